// Package config assembles kidlingo's settings from defaults, an optional
// YAML file, a .env file and KIDLINGO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/kidlingo/internal/completion"
	"github.com/abhisek/kidlingo/internal/lessongen"
	"github.com/abhisek/kidlingo/internal/llm"
	"github.com/abhisek/kidlingo/internal/logbuf"
	"github.com/abhisek/kidlingo/internal/pipeline"
	"github.com/abhisek/kidlingo/internal/repetition"
	"github.com/abhisek/kidlingo/internal/transcribe"
	"github.com/abhisek/kidlingo/internal/watcher"
)

// Config is the complete application configuration.
type Config struct {
	LLM        llm.Config        `yaml:"llm"`
	Generation Generation        `yaml:"generation"`
	Repetition Repetition        `yaml:"repetition"`
	Pipeline   pipeline.Config   `yaml:"pipeline"`
	Watcher    watcher.Config    `yaml:"watcher"`
	Sweep      Sweep             `yaml:"sweep"`
	Transcribe transcribe.Config `yaml:"transcribe"`
	Log        Log               `yaml:"log"`
	DB         DB                `yaml:"db"`
}

// Generation tunes the model conversation.
type Generation struct {
	TwoStage        bool    `yaml:"two_stage"`
	CardsPerTopic   int     `yaml:"cards_per_topic" validate:"gte=1,lte=50"`
	MaxPriorLessons int     `yaml:"max_prior_lessons" validate:"gte=0"`
	Temperature     float64 `yaml:"temperature" validate:"gte=0,lte=2"`

	AnalysisMaxTokens    int           `yaml:"analysis_max_tokens" validate:"gt=0"`
	AnalysisTimeout      time.Duration `yaml:"analysis_timeout"`
	CardsMaxTokens       int           `yaml:"cards_max_tokens" validate:"gt=0"`
	CardsTimeout         time.Duration `yaml:"cards_timeout"`
	SingleStageMaxTokens int           `yaml:"single_stage_max_tokens" validate:"gt=0"`
	SingleStageTimeout   time.Duration `yaml:"single_stage_timeout"`

	MaxContinuations      int           `yaml:"max_continuations" validate:"gte=0,lte=20"`
	ContinuationTailChars int           `yaml:"continuation_tail_chars" validate:"gt=0"`
	ContinuationMaxTokens int           `yaml:"continuation_max_tokens" validate:"gt=0"`
	ContinuationTimeout   time.Duration `yaml:"continuation_timeout"`
}

// Repetition sets how many review cards a new lesson gets.
type Repetition struct {
	Count int `yaml:"count" validate:"gte=0"`
}

// Sweep configures stuck-item recovery.
type Sweep struct {
	StuckAfter time.Duration `yaml:"stuck_after" validate:"gt=0"`
	Interval   time.Duration `yaml:"interval" validate:"gte=0"`
}

// Log configures logging.
type Log struct {
	Mode           string `yaml:"mode" validate:"oneof=dev prod"`
	Level          string `yaml:"level" validate:"oneof=debug info warn error"`
	BufferCapacity int    `yaml:"buffer_capacity" validate:"gt=0"`
}

// DB locates the SQLite database. An empty path uses the default location.
type DB struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	gen := lessongen.DefaultConfig()
	comp := completion.DefaultConfig()
	return Config{
		LLM: llm.DefaultConfig(),
		Generation: Generation{
			TwoStage:              gen.TwoStage,
			CardsPerTopic:         gen.CardsPerTopic,
			MaxPriorLessons:       gen.MaxPriorLessons,
			Temperature:           gen.Temperature,
			AnalysisMaxTokens:     gen.AnalysisMaxTokens,
			AnalysisTimeout:       gen.AnalysisTimeout,
			CardsMaxTokens:        gen.CardsMaxTokens,
			CardsTimeout:          gen.CardsTimeout,
			SingleStageMaxTokens:  gen.SingleStageMaxTokens,
			SingleStageTimeout:    gen.SingleStageTimeout,
			MaxContinuations:      comp.MaxContinuations,
			ContinuationTailChars: comp.TailChars,
			ContinuationMaxTokens: comp.ContinuationMaxTokens,
			ContinuationTimeout:   comp.ContinuationTimeout,
		},
		Repetition: Repetition{Count: repetition.DefaultCount},
		Pipeline:   pipeline.DefaultConfig(),
		Watcher:    watcher.DefaultConfig(),
		Sweep:      Sweep{StuckAfter: 2 * time.Hour, Interval: 15 * time.Minute},
		Transcribe: transcribe.DefaultConfig(),
		Log:        Log{Mode: "dev", Level: "info", BufferCapacity: logbuf.DefaultCapacity},
	}
}

// Load builds the configuration. path names a YAML file; when empty,
// KIDLINGO_CONFIG is consulted and a missing file is not an error. A .env
// file in the working directory is loaded without overriding variables
// already set.
func Load(path string) (Config, error) {
	return load(path, ".env")
}

func load(path, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("KIDLINGO_CONFIG")
		explicit = path != ""
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case explicit || !errors.Is(err, fs.ErrNotExist):
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg.ApplyEnv()
	if cfg.LLM.APIKey() == "" && cfg.LLM.Provider != "mock" {
		if discovered, ok := llm.DiscoverConfig(); ok {
			discovered.Retry = cfg.LLM.Retry
			cfg.LLM = discovered
		}
	}
	if cfg.Transcribe.APIKey == "" {
		cfg.Transcribe.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Transcribe.APIKey == "" && cfg.LLM.Provider == "openai" {
			cfg.Transcribe.APIKey = cfg.LLM.OpenAI.APIKey
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from KIDLINGO_* environment variables.
func (c *Config) ApplyEnv() {
	c.LLM.ApplyEnv()

	setBool(&c.Generation.TwoStage, "KIDLINGO_TWO_STAGE")
	setInt(&c.Generation.CardsPerTopic, "KIDLINGO_CARDS_PER_TOPIC")
	setInt(&c.Generation.MaxContinuations, "KIDLINGO_MAX_CONTINUATIONS")
	setInt(&c.Repetition.Count, "KIDLINGO_REPETITION_COUNT")

	setInt(&c.Pipeline.MinTranscriptChars, "KIDLINGO_MIN_TRANSCRIPT_CHARS")
	setBool(&c.Pipeline.DeleteMediaOnSuccess, "KIDLINGO_DELETE_MEDIA")
	setString(&c.Pipeline.DumpDir, "KIDLINGO_DUMP_DIR")

	setString(&c.Watcher.Dir, "KIDLINGO_WATCH_DIR")
	setBool(&c.Watcher.ProcessExisting, "KIDLINGO_PROCESS_EXISTING")

	if v := os.Getenv("KIDLINGO_STUCK_AFTER_HOURS"); v != "" {
		if h, err := strconv.ParseFloat(v, 64); err == nil && h > 0 {
			c.Sweep.StuckAfter = time.Duration(h * float64(time.Hour))
		}
	}

	setString(&c.Transcribe.FFmpegBinary, "KIDLINGO_FFMPEG")
	setString(&c.Transcribe.TempDir, "KIDLINGO_TEMP_AUDIO_DIR")
	setString(&c.Transcribe.Model, "KIDLINGO_WHISPER_MODEL")
	setString(&c.Transcribe.Language, "KIDLINGO_WHISPER_LANGUAGE")
	setString(&c.Transcribe.APIKey, "KIDLINGO_WHISPER_API_KEY")
	setString(&c.Transcribe.BaseURL, "KIDLINGO_WHISPER_BASE_URL")

	setString(&c.Log.Mode, "KIDLINGO_LOG_MODE")
	setString(&c.Log.Level, "KIDLINGO_LOG_LEVEL")
	setString(&c.DB.Path, "KIDLINGO_DB")
}

var validate = validator.New()

// Validate checks value ranges. Provider credentials are checked by
// LLM.Validate when a command actually needs the model.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (value %v)", f.Namespace(), f.Tag(), f.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LessonGen returns the generator settings.
func (c Config) LessonGen() lessongen.Config {
	g := c.Generation
	return lessongen.Config{
		TwoStage:             g.TwoStage,
		CardsPerTopic:        g.CardsPerTopic,
		MaxPriorLessons:      g.MaxPriorLessons,
		AnalysisMaxTokens:    g.AnalysisMaxTokens,
		AnalysisTimeout:      g.AnalysisTimeout,
		CardsMaxTokens:       g.CardsMaxTokens,
		CardsTimeout:         g.CardsTimeout,
		SingleStageMaxTokens: g.SingleStageMaxTokens,
		SingleStageTimeout:   g.SingleStageTimeout,
		Temperature:          g.Temperature,
	}
}

// Completion returns the continuation settings.
func (c Config) Completion() completion.Config {
	g := c.Generation
	return completion.Config{
		MaxContinuations:      g.MaxContinuations,
		TailChars:             g.ContinuationTailChars,
		ContinuationMaxTokens: g.ContinuationMaxTokens,
		ContinuationTimeout:   g.ContinuationTimeout,
		Temperature:           g.Temperature,
	}
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func setInt(dst *int, env string) {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, env string) {
	if v := os.Getenv(env); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
