// Package completion sends one prompt to the model and keeps asking for the
// rest of the answer while the provider reports the output was cut off at
// the token limit.
package completion

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/abhisek/kidlingo/internal/llm"
	"github.com/abhisek/kidlingo/internal/logger"
)

// Config controls continuation behaviour.
type Config struct {
	// MaxContinuations caps follow-up requests for one prompt. Output
	// still truncated after that fails with KindContinuationLimit.
	MaxContinuations int

	// TailChars is how much of the text produced so far is quoted back to
	// the model in a continuation request.
	TailChars int

	ContinuationMaxTokens int
	ContinuationTimeout   time.Duration

	// Temperature is used when a Prompt leaves it at zero.
	Temperature float64
}

// DefaultConfig returns the standard continuation settings.
func DefaultConfig() Config {
	return Config{
		MaxContinuations:      5,
		TailChars:             500,
		ContinuationMaxTokens: 4000,
		ContinuationTimeout:   60 * time.Second,
		Temperature:           0.7,
	}
}

// Prompt is a single system+user request.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Timeout     time.Duration
	Temperature float64
	// Purpose labels the request in the LLM event log.
	Purpose string
}

// Client issues prompts with continuation handling.
type Client struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// New creates a Client. A nil logger discards output.
func New(provider llm.Provider, cfg Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{provider: provider, cfg: cfg, log: log.Named("completion")}
}

const continuationSystem = "You complete an unfinished JSON document. " +
	"Return only the continuation text, starting exactly where the given text stops. " +
	"Never repeat what was already written."

// DefaultPurpose labels requests made without a purpose on the Prompt or
// the context.
const DefaultPurpose = "completion"

// Complete sends p and returns the full text, joining continuations onto
// the first response while the output keeps hitting the token limit.
func (c *Client) Complete(ctx context.Context, p Prompt) (string, error) {
	if p.Purpose == "" {
		p.Purpose = purposeOf(ctx)
	}
	ctx = llm.WithPurpose(ctx, p.Purpose)
	temp := p.Temperature
	if temp == 0 {
		temp = c.cfg.Temperature
	}

	resp, err := c.send(ctx, p.Timeout, llm.UserRequest(p.System, p.User, p.MaxTokens, temp))
	if err != nil {
		return "", classify(err, p.Purpose)
	}

	text := resp.Content
	truncated := resp.Truncated()
	contCtx := llm.WithPurpose(ctx, p.Purpose+"-continuation")

	for n := 1; truncated; n++ {
		if n > c.cfg.MaxContinuations {
			c.log.Error("response still truncated, giving up",
				"purpose", p.Purpose, "continuations", c.cfg.MaxContinuations, "chars", len(text))
			return "", &Error{
				Kind:    KindContinuationLimit,
				Purpose: p.Purpose,
				Cause:   &llm.ErrMaxTokensExceeded{Content: text},
			}
		}

		c.log.Warn("response truncated, requesting continuation",
			"purpose", p.Purpose, "attempt", n, "chars", len(text))

		req := llm.UserRequest(continuationSystem, continuationPrompt(tail(text, c.cfg.TailChars)),
			c.cfg.ContinuationMaxTokens, temp)
		cont, err := c.send(contCtx, c.cfg.ContinuationTimeout, req)
		if err != nil {
			return "", classify(fmt.Errorf("continuation %d: %w", n, err), p.Purpose)
		}

		text += cont.Content
		truncated = cont.Truncated()
		c.log.Info("continuation received", "purpose", p.Purpose, "chars", len(cont.Content))
	}
	return text, nil
}

func (c *Client) send(ctx context.Context, timeout time.Duration, req llm.Request) (*llm.Response, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return c.provider.Generate(ctx, req)
}

func continuationPrompt(tailText string) string {
	return "Continue and finish this unfinished JSON.\n" +
		"Return ONLY the continuation, starting where the text breaks off. " +
		"Do not repeat anything already written; continue until every bracket and array is closed.\n\n" +
		"Unfinished JSON:\n" + tailText + "\n\nContinuation:"
}

// tail returns the last n runes of s.
func tail(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[len(r)-n:])
}

func purposeOf(ctx context.Context) string {
	if p := llm.PurposeFrom(ctx); p != "" && p != "unknown" {
		return p
	}
	return DefaultPurpose
}
