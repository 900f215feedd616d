package jsonrepair

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Strategy names the step that produced a decodable document.
type Strategy string

const (
	StrategyNone      Strategy = "none"
	StrategyGeneric   Strategy = "generic"
	StrategyTruncated Strategy = "truncated"
)

// Result describes how Decode got to valid JSON.
type Result struct {
	// Cleaned is the sanitized text before any repair.
	Cleaned string
	// Text is the document that was finally decoded.
	Text     string
	Repaired bool
	Strategy Strategy
}

// ParseError reports a response that could not be made to parse.
type ParseError struct {
	Raw     string
	Cleaned string
	Offset  int
	Err     error
}

func (e *ParseError) Error() string {
	line, col := e.Position()
	return fmt.Sprintf("parse model response at offset %d (line %d, column %d): %v", e.Offset, line, col, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Position converts Offset into a 1-based line and column of Cleaned.
func (e *ParseError) Position() (line, col int) {
	off := min(max(e.Offset, 0), len(e.Cleaned))
	before := e.Cleaned[:off]
	line = strings.Count(before, "\n") + 1
	col = off - strings.LastIndexByte(before, '\n')
	return line, col
}

// Decode sanitizes raw and unmarshals it into v. A document that does not
// parse goes through RepairGeneric and then, when the error sits past the
// truncation threshold, RepairTruncated; the first candidate that parses is
// decoded. Mid-document damage that RepairGeneric cannot fix is never cut
// down to a prefix. A *ParseError is returned when nothing works.
func Decode(raw string, v any) (*Result, error) {
	cleaned := Sanitize(raw)
	res := &Result{Cleaned: cleaned, Text: cleaned, Strategy: StrategyNone}

	if json.Valid([]byte(cleaned)) {
		if err := json.Unmarshal([]byte(cleaned), v); err != nil {
			return nil, &ParseError{Raw: raw, Cleaned: cleaned, Offset: errorOffset(err, len(cleaned)), Err: err}
		}
		return res, nil
	}

	var probe any
	firstErr := json.Unmarshal([]byte(cleaned), &probe)
	offset := errorOffset(firstErr, len(cleaned))

	if fixed, ok := RepairGeneric(cleaned, offset); ok {
		if err := json.Unmarshal([]byte(fixed), v); err == nil {
			res.Text, res.Repaired, res.Strategy = fixed, true, StrategyGeneric
			return res, nil
		}
	}
	if !looksTruncated(offset, len(cleaned)) {
		return nil, &ParseError{Raw: raw, Cleaned: cleaned, Offset: offset, Err: firstErr}
	}
	if fixed, ok := RepairTruncated(cleaned, offset); ok {
		if err := json.Unmarshal([]byte(fixed), v); err == nil {
			res.Text, res.Repaired, res.Strategy = fixed, true, StrategyTruncated
			return res, nil
		}
	}

	return nil, &ParseError{Raw: raw, Cleaned: cleaned, Offset: offset, Err: firstErr}
}

func errorOffset(err error, fallback int) int {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return int(se.Offset)
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return int(te.Offset)
	}
	return fallback
}
