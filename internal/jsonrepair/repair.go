package jsonrepair

import (
	"encoding/json"
	"strings"
)

// truncationThreshold is the fraction of the document an error offset must
// pass before RepairGeneric treats the error as a cut-off response.
const truncationThreshold = 0.85

// maxElementCandidates bounds how many complete elements RepairTruncated
// tries, counting back from the error offset.
const maxElementCandidates = 64

// closedElement is an object that was closed inside a container.
type closedElement struct {
	start, end int    // offsets of '{' and '}'
	open       []byte // containers still open after it, outermost first
}

// scanState is the result of walking a prefix of a JSON document.
type scanState struct {
	open     []byte // unclosed '{' / '[' in order
	inString bool
	closed   []closedElement
}

func scan(s string) scanState {
	var st scanState
	var starts []int
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if st.inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				st.inString = false
			}
			continue
		}
		switch c {
		case '"':
			st.inString = true
		case '{', '[':
			st.open = append(st.open, c)
			starts = append(starts, i)
		case '}', ']':
			if len(st.open) == 0 {
				continue
			}
			top := st.open[len(st.open)-1]
			start := starts[len(starts)-1]
			st.open = st.open[:len(st.open)-1]
			starts = starts[:len(starts)-1]
			if top == '{' && c == '}' && len(st.open) > 0 {
				st.closed = append(st.closed, closedElement{
					start: start,
					end:   i,
					open:  append([]byte(nil), st.open...),
				})
			}
		}
	}
	return st
}

func closers(open []byte) string {
	var b strings.Builder
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}

// RepairTruncated salvages a document that was cut off at or before
// offset. It first looks backward for the last complete object sitting
// inside a container, truncates right after it and closes whatever is
// still open. If no such element yields valid JSON, it closes every open
// container of the prefix instead. ok is false when the result still does
// not parse; the candidate is returned either way.
func RepairTruncated(content string, offset int) (repaired string, ok bool) {
	if offset <= 0 || offset > len(content) {
		offset = len(content)
	}
	prefix := content[:offset]
	st := scan(prefix)

	tried := 0
	for i := len(st.closed) - 1; i >= 0 && tried < maxElementCandidates; i-- {
		el := st.closed[i]
		tried++
		if !json.Valid([]byte(prefix[el.start : el.end+1])) {
			continue
		}
		candidate := prefix[:el.end+1] + closers(el.open)
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}

	candidate := closeAll(prefix, st)
	return candidate, json.Valid([]byte(candidate))
}

// closeAll terminates an open string, drops a dangling separator and
// appends closers for every open container.
func closeAll(prefix string, st scanState) string {
	s := prefix
	if st.inString {
		s += `"`
	}
	s = strings.TrimRight(s, " \t\r\n")
	s = strings.TrimRight(s, ",:")
	return s + closers(st.open)
}

// RepairGeneric fixes mid-document damage: trailing commas, string literals
// left open at a line end, and leftover comments. When offset lies beyond
// 85% of the content the error is taken as truncation and RepairTruncated
// runs last.
func RepairGeneric(content string, offset int) (repaired string, ok bool) {
	fixed := stripComments(content)
	fixed = closeOpenStrings(fixed)
	fixed = stripTrailingCommas(fixed)

	if json.Valid([]byte(fixed)) {
		return fixed, fixed != content
	}
	if looksTruncated(offset, len(content)) {
		return RepairTruncated(fixed, syntaxOffset(fixed))
	}
	return fixed, false
}

// looksTruncated reports whether a parse error at offset is late enough in
// a document of length n to be taken as a cut-off response.
func looksTruncated(offset, n int) bool {
	return float64(offset) > truncationThreshold*float64(n)
}

// closeOpenStrings ends string literals that run into a raw newline or the
// end of input, both of which are illegal inside JSON strings.
func closeOpenStrings(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			case c == '\n':
				b.WriteByte('"')
				inString = false
			}
			b.WriteByte(c)
			continue
		}
		if c == '"' {
			inString = true
		}
		b.WriteByte(c)
	}
	if inString {
		b.WriteByte('"')
	}
	return b.String()
}

// syntaxOffset returns where the decoder gave up on s, or len(s) when the
// error carries no position.
func syntaxOffset(s string) int {
	var v any
	err := json.Unmarshal([]byte(s), &v)
	if se, ok := err.(*json.SyntaxError); ok {
		return int(se.Offset)
	}
	return len(s)
}
