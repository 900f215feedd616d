package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable that could leak into a load from the host.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"KIDLINGO_CONFIG", "OPENROUTER_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
		"KIDLINGO_LLM_PROVIDER", "KIDLINGO_OPENROUTER_API_KEY", "KIDLINGO_OPENAI_API_KEY",
		"KIDLINGO_WATCH_DIR", "KIDLINGO_DB", "KIDLINGO_TWO_STAGE", "KIDLINGO_CARDS_PER_TOPIC",
		"KIDLINGO_REPETITION_COUNT", "KIDLINGO_STUCK_AFTER_HOURS", "KIDLINGO_WHISPER_API_KEY",
		"KIDLINGO_LOG_LEVEL", "KIDLINGO_LOG_MODE", "KIDLINGO_DELETE_MEDIA",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Generation.TwoStage)
	assert.Equal(t, 22, cfg.Repetition.Count)
	assert.Equal(t, 50, cfg.Pipeline.MinTranscriptChars)
	assert.Equal(t, 2*time.Hour, cfg.Sweep.StuckAfter)
	assert.Equal(t, "openrouter", cfg.LLM.Provider)
}

func TestLoadWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := load("", "")
	require.NoError(t, err)
	assert.Equal(t, Default().Generation, cfg.Generation)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "kidlingo.yaml", `
llm:
  provider: mock
generation:
  two_stage: false
  cards_per_topic: 8
  cards_timeout: 90s
repetition:
  count: 10
pipeline:
  delete_media_on_success: false
watcher:
  dir: /srv/videos
sweep:
  stuck_after: 30m
db:
  path: /tmp/k.db
`)

	cfg, err := load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.False(t, cfg.Generation.TwoStage)
	assert.Equal(t, 8, cfg.Generation.CardsPerTopic)
	assert.Equal(t, 90*time.Second, cfg.Generation.CardsTimeout)
	assert.Equal(t, 10, cfg.Repetition.Count)
	assert.False(t, cfg.Pipeline.DeleteMediaOnSuccess)
	assert.Equal(t, "/srv/videos", cfg.Watcher.Dir)
	assert.Equal(t, 30*time.Minute, cfg.Sweep.StuckAfter)
	assert.Equal(t, "/tmp/k.db", cfg.DB.Path)

	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Transcribe.FFmpegBinary, cfg.Transcribe.FFmpegBinary)
	assert.Equal(t, Default().Pipeline.MinTranscriptChars, cfg.Pipeline.MinTranscriptChars)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfigFromEnvVar(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "k.yaml", "repetition:\n  count: 3\n")
	t.Setenv("KIDLINGO_CONFIG", path)

	cfg, err := load("", "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Repetition.Count)
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "bad.yaml", "generation: [oops\n")

	_, err := load(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "k.yaml", "watcher:\n  dir: from-yaml\n")
	t.Setenv("KIDLINGO_WATCH_DIR", "from-env")
	t.Setenv("KIDLINGO_TWO_STAGE", "false")
	t.Setenv("KIDLINGO_CARDS_PER_TOPIC", "4")
	t.Setenv("KIDLINGO_STUCK_AFTER_HOURS", "1.5")
	t.Setenv("KIDLINGO_DB", "/data/k.db")
	t.Setenv("KIDLINGO_LOG_LEVEL", "debug")

	cfg, err := load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Watcher.Dir)
	assert.False(t, cfg.Generation.TwoStage)
	assert.Equal(t, 4, cfg.Generation.CardsPerTopic)
	assert.Equal(t, 90*time.Minute, cfg.Sweep.StuckAfter)
	assert.Equal(t, "/data/k.db", cfg.DB.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty.
	os.Unsetenv("KIDLINGO_REPETITION_COUNT")
	t.Cleanup(func() { os.Unsetenv("KIDLINGO_REPETITION_COUNT") })
	envFile := writeFile(t, ".env", "KIDLINGO_REPETITION_COUNT=7\n")

	cfg, err := load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Repetition.Count)
}

func TestLoadDiscoversProviderKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := load("", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey())
	assert.Equal(t, "sk-test", cfg.Transcribe.APIKey)
}

func TestWhisperKeyOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-llm")
	t.Setenv("KIDLINGO_WHISPER_API_KEY", "sk-whisper")

	cfg, err := load("", "")
	require.NoError(t, err)
	assert.Equal(t, "sk-whisper", cfg.Transcribe.APIKey)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"cards per topic", func(c *Config) { c.Generation.CardsPerTopic = 0 }, "CardsPerTopic"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "Level"},
		{"provider", func(c *Config) { c.LLM.Provider = "cohere" }, "Provider"},
		{"stuck after", func(c *Config) { c.Sweep.StuckAfter = 0 }, "StuckAfter"},
		{"repetition", func(c *Config) { c.Repetition.Count = -1 }, "Count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestGenerationMapping(t *testing.T) {
	cfg := Default()
	cfg.Generation.CardsPerTopic = 9
	cfg.Generation.Temperature = 0.3
	cfg.Generation.MaxContinuations = 2

	gen := cfg.LessonGen()
	assert.Equal(t, 9, gen.CardsPerTopic)
	assert.Equal(t, 0.3, gen.Temperature)
	assert.Equal(t, cfg.Generation.CardsTimeout, gen.CardsTimeout)

	comp := cfg.Completion()
	assert.Equal(t, 2, comp.MaxContinuations)
	assert.Equal(t, 0.3, comp.Temperature)
	assert.Equal(t, cfg.Generation.ContinuationTailChars, comp.TailChars)
}
