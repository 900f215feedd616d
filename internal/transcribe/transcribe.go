// Package transcribe turns lesson videos into plain text.
package transcribe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/abhisek/kidlingo/internal/logger"
)

// ErrFileNotFound is returned when the video does not exist on disk.
var ErrFileNotFound = errors.New("video file not found")

// Transcriber returns the spoken text of a media file.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// Config configures audio extraction and the Whisper endpoint.
type Config struct {
	FFmpegBinary string        `yaml:"ffmpeg_binary"`
	TempDir      string        `yaml:"temp_dir"`
	Model        string        `yaml:"model"`
	Language     string        `yaml:"language"` // empty lets Whisper detect it
	APIKey       string        `yaml:"api_key"`
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
	// SegmentLength bounds each uploaded chunk. At 32 kbit/s ten minutes
	// is about 2.4 MB, well under the hosted 25 MB upload limit.
	SegmentLength time.Duration `yaml:"segment_length"`
}

// DefaultConfig returns the transcription defaults.
func DefaultConfig() Config {
	return Config{
		FFmpegBinary:  "ffmpeg",
		TempDir:       filepath.Join(os.TempDir(), "kidlingo-audio"),
		Model:         openai.Whisper1,
		Timeout:       10 * time.Minute,
		SegmentLength: 10 * time.Minute,
	}
}

// AudioExtractor writes the audio track of a video into outDir as one or
// more chunks and returns their paths in playback order.
type AudioExtractor interface {
	Extract(ctx context.Context, videoPath, outDir string) ([]string, error)
}

// FFmpeg extracts 16 kHz mono MP3 audio with the ffmpeg binary, split into
// chunks of at most SegmentLength.
type FFmpeg struct {
	Binary        string
	Timeout       time.Duration
	SegmentLength time.Duration
}

const segmentPattern = "chunk-%03d.mp3"

func (f FFmpeg) Extract(ctx context.Context, videoPath, outDir string) ([]string, error) {
	bin := f.Binary
	if bin == "" {
		bin = "ffmpeg"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("missing required binary %q in PATH: %w", bin, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir audio dir: %w", err)
	}

	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, ffmpegArgs(videoPath, outDir, f.SegmentLength)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg extract audio failed: %w; out=%s", err, string(out))
	}
	chunks, err := listChunks(outDir)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("audio output missing in %s", outDir)
	}
	return chunks, nil
}

func ffmpegArgs(videoPath, outDir string, segment time.Duration) []string {
	if segment <= 0 {
		segment = DefaultConfig().SegmentLength
	}
	return []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "libmp3lame",
		"-b:a", "32k",
		"-f", "segment",
		"-segment_time", strconv.Itoa(int(segment.Seconds())),
		"-reset_timestamps", "1",
		filepath.Join(outDir, segmentPattern),
	}
}

// listChunks returns the chunk files in outDir. The zero-padded names sort
// in playback order.
func listChunks(outDir string) ([]string, error) {
	chunks, err := filepath.Glob(filepath.Join(outDir, "chunk-*.mp3"))
	if err != nil {
		return nil, fmt.Errorf("list audio chunks: %w", err)
	}
	sort.Strings(chunks)
	return chunks, nil
}

// WhisperTranscriber extracts the audio track and sends it to an
// OpenAI-compatible Whisper endpoint.
type WhisperTranscriber struct {
	client    *openai.Client
	extractor AudioExtractor
	cfg       Config
	log       *logger.Logger
}

// NewWhisper creates a WhisperTranscriber. A nil extractor uses ffmpeg.
func NewWhisper(cfg Config, extractor AudioExtractor, log *logger.Logger) (*WhisperTranscriber, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("transcription API key is required")
	}
	if log == nil {
		log = logger.Nop()
	}
	if extractor == nil {
		extractor = FFmpeg{Binary: cfg.FFmpegBinary, Timeout: cfg.Timeout, SegmentLength: cfg.SegmentLength}
	}
	if cfg.Model == "" {
		cfg.Model = openai.Whisper1
	}
	if cfg.TempDir == "" {
		cfg.TempDir = DefaultConfig().TempDir
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &WhisperTranscriber{
		client:    openai.NewClientWithConfig(oc),
		extractor: extractor,
		cfg:       cfg,
		log:       log.Named("transcribe"),
	}, nil
}

// Transcribe returns the trimmed transcript of the video at path. Long
// recordings are sent in chunks and the texts are joined in order. The
// temporary audio is removed whether or not transcription succeeds.
func (w *WhisperTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("stat video: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	audioDir := filepath.Join(w.cfg.TempDir, fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]))
	defer os.RemoveAll(audioDir)

	w.log.Info("extracting audio", "path", path, "size_mb", float64(info.Size())/(1<<20))
	chunks, err := w.extractor.Extract(ctx, path, audioDir)
	if err != nil {
		return "", err
	}

	if w.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:    w.cfg.Model,
			FilePath: chunk,
			Language: w.cfg.Language,
			Format:   openai.AudioResponseFormatJSON,
		})
		if err != nil {
			return "", fmt.Errorf("whisper transcription (chunk %d of %d): %w", i+1, len(chunks), err)
		}
		if text := strings.TrimSpace(resp.Text); text != "" {
			parts = append(parts, text)
		}
	}

	text := strings.Join(parts, " ")
	w.log.Info("transcription complete", "chars", len(text), "chunks", len(chunks), "elapsed", time.Since(start).Round(time.Millisecond))
	return text, nil
}
