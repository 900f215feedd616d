// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExerciseCard is the predicate function for exercisecard builders.
type ExerciseCard func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// MediaSource is the predicate function for mediasource builders.
type MediaSource func(*sql.Selector)
