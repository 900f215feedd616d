package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kidlingo/internal/completion"
	"github.com/abhisek/kidlingo/internal/config"
	"github.com/abhisek/kidlingo/internal/ingest"
	"github.com/abhisek/kidlingo/internal/jsonrepair"
	"github.com/abhisek/kidlingo/internal/lessongen"
	"github.com/abhisek/kidlingo/internal/llm"
	"github.com/abhisek/kidlingo/internal/logbuf"
	"github.com/abhisek/kidlingo/internal/logger"
	"github.com/abhisek/kidlingo/internal/pipeline"
	"github.com/abhisek/kidlingo/internal/repetition"
	"github.com/abhisek/kidlingo/internal/store"
	"github.com/abhisek/kidlingo/internal/transcribe"
)

// app holds the dependencies shared by the pipeline commands.
type app struct {
	cfg    config.Config
	log    *logger.Logger
	logs   *logbuf.Buffer
	store  *store.Store
	dbPath string
}

// newApp loads config, builds the logger with its ring buffer and opens the
// store.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logs := logbuf.New(cfg.Log.BufferCapacity)
	log, err := logger.New(logger.Options{Mode: cfg.Log.Mode, Level: cfg.Log.Level, Buffer: logs})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	s, dbPath, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, logs: logs, store: s, dbPath: dbPath}, nil
}

// Close saves the log buffer for the logs command and releases resources.
func (a *app) Close() {
	if err := a.logs.SaveSnapshot(logSnapshotPath(a.dbPath)); err != nil {
		a.log.Warn("could not save log snapshot", "error", err)
	}
	a.log.Sync()
	_ = a.store.Close()
}

// processor wires the provider, generator, assembler and transcriber into
// a pipeline.Processor.
func (a *app) processor(ctx context.Context) (*pipeline.Processor, error) {
	if err := a.cfg.LLM.Validate(); err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	provider, err := llm.NewProvider(ctx, a.cfg.LLM, a.store.EventRepo(), a.log)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	transcriber, err := transcribe.NewWhisper(a.cfg.Transcribe, nil, a.log)
	if err != nil {
		return nil, fmt.Errorf("transcriber: %w", err)
	}

	var dumps *jsonrepair.DumpWriter
	if a.cfg.Pipeline.DumpDir != "" {
		dumps = jsonrepair.NewDumpWriter(a.cfg.Pipeline.DumpDir)
	}
	client := completion.New(provider, a.cfg.Completion(), a.log)
	generator := lessongen.New(client, a.cfg.LessonGen(), dumps, a.log)

	var opts []ingest.Option
	if n := a.cfg.Repetition.Count; n > 0 {
		seed := uint64(time.Now().UnixNano())
		reviewer := repetition.New(a.store.LessonRepo(), rand.New(rand.NewPCG(seed, seed>>1)), a.log)
		opts = append(opts, ingest.WithReviewer(reviewer, n))
	}
	assembler := ingest.New(a.store, a.log, opts...)

	return pipeline.NewProcessor(a.store, transcriber, generator, assembler, a.logs, a.cfg.Pipeline, a.log), nil
}
