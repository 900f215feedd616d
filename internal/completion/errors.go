package completion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/abhisek/kidlingo/internal/llm"
)

// Kind classifies why a completion failed.
type Kind string

const (
	KindTimeout           Kind = "timeout"
	KindConnection        Kind = "connection"
	KindTruncatedStream   Kind = "truncated_stream"
	KindContinuationLimit Kind = "continuation_limit"
	KindCanceled          Kind = "canceled"
	KindProvider          Kind = "provider"
)

// Error is returned by Client.Complete for every failure.
type Error struct {
	Kind    Kind
	Purpose string
	Cause   error
}

func (e *Error) Error() string {
	var what string
	switch e.Kind {
	case KindTimeout:
		what = "model request timed out"
	case KindConnection:
		what = "could not reach the model provider"
	case KindTruncatedStream:
		what = "model response stream ended early"
	case KindContinuationLimit:
		what = "model response still truncated after the continuation limit"
	case KindCanceled:
		what = "model request canceled"
	default:
		what = "model request failed"
	}
	if e.Purpose != "" {
		what = e.Purpose + ": " + what
	}
	if e.Cause == nil {
		return what
	}
	return fmt.Sprintf("%s: %v", what, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// IsKind reports whether err is a completion error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

func classify(err error, purpose string) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return &Error{Kind: kindOf(err), Purpose: purpose, Cause: err}
}

func kindOf(err error) Kind {
	var netErr net.Error
	var unavailable *llm.ErrProviderUnavailable
	var opErr *net.OpError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, io.ErrUnexpectedEOF):
		return KindTruncatedStream
	case errors.As(err, &unavailable), errors.As(err, &opErr):
		return KindConnection
	default:
		return KindProvider
	}
}
