// Package pipeline drives a media source from video to persisted lesson and
// keeps its status row in step with each stage.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kidlingo/internal/ingest"
	"github.com/abhisek/kidlingo/internal/lessongen"
	"github.com/abhisek/kidlingo/internal/llm"
	"github.com/abhisek/kidlingo/internal/logbuf"
	"github.com/abhisek/kidlingo/internal/logger"
	"github.com/abhisek/kidlingo/internal/store"
	"github.com/abhisek/kidlingo/internal/transcribe"
)

// Progress messages stored on the media row.
const (
	MsgTranscribing  = "Transcribing video..."
	MsgGenerating    = "Generating lesson with AI..."
	MsgLessonExists  = "Lesson already exists."
	msgLessonCreated = "Lesson created: %s"
	msgError         = "Error: %s"
	msgFileNotFound  = "Video file not found: %s"
)

// Config configures a Processor.
type Config struct {
	MinTranscriptChars   int           `yaml:"min_transcript_chars" validate:"gte=0"`
	DeleteMediaOnSuccess bool          `yaml:"delete_media_on_success"`
	PriorLessons         int           `yaml:"prior_lessons" validate:"gte=0"`
	DumpDir              string        `yaml:"dump_dir"`
	StaleAfter           time.Duration `yaml:"stale_after"`
}

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() Config {
	return Config{
		MinTranscriptChars:   50,
		DeleteMediaOnSuccess: true,
		PriorLessons:         5,
		StaleAfter:           10 * time.Minute,
	}
}

// Generator produces a lesson payload from a transcript.
type Generator interface {
	Generate(ctx context.Context, in lessongen.Input) (*lessongen.LessonPayload, error)
}

// Assembler persists a lesson payload for a media source.
type Assembler interface {
	Assemble(ctx context.Context, media *store.Media, transcript string, payload *lessongen.LessonPayload, force bool) (*ingest.Result, error)
}

// Options tunes a single Process call.
type Options struct {
	// Force reprocesses media that is done or marked processing and
	// replaces its lesson.
	Force bool
}

// Processor runs media sources through transcription, generation and
// assembly, one at a time.
type Processor struct {
	media       store.MediaRepo
	lessons     store.LessonRepo
	transcriber transcribe.Transcriber
	generator   Generator
	assembler   Assembler
	logs        *logbuf.Buffer
	cfg         Config
	log         *logger.Logger
	now         func() time.Time
}

// NewProcessor wires a Processor. logs may be nil.
func NewProcessor(s *store.Store, t transcribe.Transcriber, g Generator, a Assembler, logs *logbuf.Buffer, cfg Config, log *logger.Logger) *Processor {
	if log == nil {
		log = logger.Nop()
	}
	return &Processor{
		media:       s.MediaRepo(),
		lessons:     s.LessonRepo(),
		transcriber: t,
		generator:   g,
		assembler:   a,
		logs:        logs,
		cfg:         cfg,
		log:         log.Named("pipeline"),
		now:         time.Now,
	}
}

// Process runs the media source with the given ID to completion. A media
// source already being processed, or already done with a lesson, is left
// alone unless opts.Force is set; its existing lesson (possibly nil) is
// returned. Every failure marks the media row as failed and comes back as
// a *Error.
func (p *Processor) Process(ctx context.Context, mediaID int, opts Options) (*store.Lesson, error) {
	m, err := p.media.Get(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx = llm.WithRunID(ctx, runID)
	log := p.log.With("run_id", runID, "media_id", m.ID)

	if !opts.Force {
		switch m.Status {
		case store.StatusProcessing:
			log.Warn("media is already being processed")
			return p.lessons.ForMedia(ctx, m.ID)
		case store.StatusDone:
			l, err := p.lessons.ForMedia(ctx, m.ID)
			if err != nil || l != nil {
				if l != nil {
					log.Warn("lesson already exists", "lesson_id", l.ID)
				}
				return l, err
			}
		}
	}

	log.Info("processing started", "name", m.Name, "path", m.Path)
	if err := p.setStage(ctx, m.ID, store.StatusProcessing, store.StageTranscribing, MsgTranscribing, nil); err != nil {
		return nil, err
	}

	if _, err := os.Stat(m.Path); errors.Is(err, os.ErrNotExist) {
		return nil, p.fail(ctx, log, m, store.StageTranscribing,
			fmt.Errorf("%w: %s", ErrMediaMissing, m.Path), fmt.Sprintf(msgFileNotFound, m.Path))
	}

	transcript, err := p.transcriber.Transcribe(ctx, m.Path)
	if err != nil {
		if errors.Is(err, transcribe.ErrFileNotFound) {
			err = fmt.Errorf("%w: %s", ErrMediaMissing, m.Path)
		}
		return nil, p.fail(ctx, log, m, store.StageTranscribing, err, "")
	}
	if n := len([]rune(strings.TrimSpace(transcript))); n < p.cfg.MinTranscriptChars {
		return nil, p.fail(ctx, log, m, store.StageTranscribing,
			fmt.Errorf("%w: %d characters", ErrTranscriptTooShort, n), "")
	}
	log.Info("transcript ready", "chars", len(transcript))

	hasTranscript := true
	if err := p.setStage(ctx, m.ID, store.StatusProcessing, store.StageGeneratingLesson, MsgGenerating, &hasTranscript); err != nil {
		return nil, err
	}

	payload, err := p.generator.Generate(ctx, lessongen.Input{
		Transcript:   transcript,
		PriorLessons: p.priorLessons(ctx, log, m.ID),
	})
	if err != nil {
		return nil, p.fail(ctx, log, m, store.StageGeneratingLesson, err, "")
	}

	res, err := p.assembler.Assemble(ctx, m, FilterTranscript(transcript), payload, opts.Force)
	if err != nil {
		return nil, p.fail(ctx, log, m, store.StageGeneratingLesson, err, "")
	}

	msg := fmt.Sprintf(msgLessonCreated, res.Lesson.Title)
	if res.Existing {
		msg = MsgLessonExists
	}
	if err := p.media.MarkDone(ctx, m.ID, msg); err != nil {
		// The lesson is saved; a later run finds it and only marks done.
		return nil, p.fail(ctx, log, m, store.StageGeneratingLesson, fmt.Errorf("mark done: %w", err), "")
	}
	log.Info("processing complete",
		"lesson_id", res.Lesson.ID, "title", res.Lesson.Title,
		"cards", res.Created, "reviews", res.Reviews, "skipped", res.Skipped)

	if p.cfg.DeleteMediaOnSuccess && !res.Existing {
		p.removeMedia(log, m)
	}
	return res.Lesson, nil
}

func (p *Processor) priorLessons(ctx context.Context, log *logger.Logger, mediaID int) []lessongen.PriorLesson {
	if p.cfg.PriorLessons <= 0 {
		return nil
	}
	summaries, err := p.lessons.RecentSummaries(ctx, p.cfg.PriorLessons, mediaID)
	if err != nil {
		log.Warn("could not load prior lessons", "error", err)
		return nil
	}
	out := make([]lessongen.PriorLesson, len(summaries))
	for i, s := range summaries {
		out[i] = lessongen.PriorLesson{Title: s.Title, Topics: s.Topics, CardCount: s.CardCount}
	}
	return out
}

func (p *Processor) setStage(ctx context.Context, id int, status store.MediaStatus, stage store.Stage, msg string, hasTranscript *bool) error {
	err := p.media.UpdateStatus(ctx, id, store.StatusUpdate{
		Status:        &status,
		Stage:         &stage,
		Message:       &msg,
		HasTranscript: hasTranscript,
	})
	if err != nil {
		return fmt.Errorf("update media %d: %w", id, err)
	}
	return nil
}

// fail records err on the media row and wraps it. message overrides the
// default "Error: ..." progress text.
func (p *Processor) fail(ctx context.Context, log *logger.Logger, m *store.Media, stage store.Stage, err error, message string) error {
	log.Error("processing failed", "stage", stage, "error", err)
	if message == "" {
		message = fmt.Sprintf(msgError, err)
	}
	// The row must record the failure even when the run was cancelled.
	if merr := p.media.MarkError(context.WithoutCancel(ctx), m.ID, message, err.Error()); merr != nil {
		log.Error("could not record failure", "error", merr)
	}
	return &Error{MediaID: m.ID, Stage: stage, Err: err}
}

func (p *Processor) removeMedia(log *logger.Logger, m *store.Media) {
	info, err := os.Stat(m.Path)
	if err != nil {
		log.Warn("video file not found for removal", "path", m.Path)
		return
	}
	if err := os.Remove(m.Path); err != nil {
		log.Error("could not remove video file", "path", m.Path, "error", err)
		return
	}
	log.Info("video file removed", "path", m.Path, "size_mb", float64(info.Size())/(1<<20))
}
