// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/kidlingo/ent/exercisecard"
	"github.com/abhisek/kidlingo/ent/lesson"
	"github.com/abhisek/kidlingo/ent/llmrequestevent"
	"github.com/abhisek/kidlingo/ent/mediasource"
	"github.com/abhisek/kidlingo/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	exercisecardFields := schema.ExerciseCard{}.Fields()
	_ = exercisecardFields
	// exercisecardDescQuestionText is the schema descriptor for question_text field.
	exercisecardDescQuestionText := exercisecardFields[1].Descriptor()
	// exercisecard.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	exercisecard.QuestionTextValidator = exercisecardDescQuestionText.Validators[0].(func(string) error)
	// exercisecardDescPromptText is the schema descriptor for prompt_text field.
	exercisecardDescPromptText := exercisecardFields[2].Descriptor()
	// exercisecard.DefaultPromptText holds the default value on creation for the prompt_text field.
	exercisecard.DefaultPromptText = exercisecardDescPromptText.Default.(string)
	// exercisecardDescOrderIndex is the schema descriptor for order_index field.
	exercisecardDescOrderIndex := exercisecardFields[6].Descriptor()
	// exercisecard.DefaultOrderIndex holds the default value on creation for the order_index field.
	exercisecard.DefaultOrderIndex = exercisecardDescOrderIndex.Default.(int)
	// exercisecardDescTopic is the schema descriptor for topic field.
	exercisecardDescTopic := exercisecardFields[7].Descriptor()
	// exercisecard.DefaultTopic holds the default value on creation for the topic field.
	exercisecard.DefaultTopic = exercisecardDescTopic.Default.(string)
	// exercisecardDescIsRepetition is the schema descriptor for is_repetition field.
	exercisecardDescIsRepetition := exercisecardFields[8].Descriptor()
	// exercisecard.DefaultIsRepetition holds the default value on creation for the is_repetition field.
	exercisecard.DefaultIsRepetition = exercisecardDescIsRepetition.Default.(bool)
	// exercisecardDescCreatedAt is the schema descriptor for created_at field.
	exercisecardDescCreatedAt := exercisecardFields[14].Descriptor()
	// exercisecard.DefaultCreatedAt holds the default value on creation for the created_at field.
	exercisecard.DefaultCreatedAt = exercisecardDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescRunID is the schema descriptor for run_id field.
	llmrequesteventDescRunID := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultRunID holds the default value on creation for the run_id field.
	llmrequestevent.DefaultRunID = llmrequesteventDescRunID.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescStopReason is the schema descriptor for stop_reason field.
	llmrequesteventDescStopReason := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultStopReason holds the default value on creation for the stop_reason field.
	llmrequestevent.DefaultStopReason = llmrequesteventDescStopReason.Default.(string)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[11].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[0].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescDescription is the schema descriptor for description field.
	lessonDescDescription := lessonFields[1].Descriptor()
	// lesson.DefaultDescription holds the default value on creation for the description field.
	lesson.DefaultDescription = lessonDescDescription.Default.(string)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[5].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescUpdatedAt is the schema descriptor for updated_at field.
	lessonDescUpdatedAt := lessonFields[6].Descriptor()
	// lesson.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lesson.DefaultUpdatedAt = lessonDescUpdatedAt.Default.(func() time.Time)
	// lesson.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lesson.UpdateDefaultUpdatedAt = lessonDescUpdatedAt.UpdateDefault.(func() time.Time)
	mediasourceFields := schema.MediaSource{}.Fields()
	_ = mediasourceFields
	// mediasourceDescPath is the schema descriptor for path field.
	mediasourceDescPath := mediasourceFields[0].Descriptor()
	// mediasource.PathValidator is a validator for the "path" field. It is called by the builders before save.
	mediasource.PathValidator = mediasourceDescPath.Validators[0].(func(string) error)
	// mediasourceDescName is the schema descriptor for name field.
	mediasourceDescName := mediasourceFields[1].Descriptor()
	// mediasource.NameValidator is a validator for the "name" field. It is called by the builders before save.
	mediasource.NameValidator = mediasourceDescName.Validators[0].(func(string) error)
	// mediasourceDescSize is the schema descriptor for size field.
	mediasourceDescSize := mediasourceFields[2].Descriptor()
	// mediasource.DefaultSize holds the default value on creation for the size field.
	mediasource.DefaultSize = mediasourceDescSize.Default.(int64)
	// mediasourceDescProcessingMessage is the schema descriptor for processing_message field.
	mediasourceDescProcessingMessage := mediasourceFields[5].Descriptor()
	// mediasource.DefaultProcessingMessage holds the default value on creation for the processing_message field.
	mediasource.DefaultProcessingMessage = mediasourceDescProcessingMessage.Default.(string)
	// mediasourceDescErrorMessage is the schema descriptor for error_message field.
	mediasourceDescErrorMessage := mediasourceFields[6].Descriptor()
	// mediasource.DefaultErrorMessage holds the default value on creation for the error_message field.
	mediasource.DefaultErrorMessage = mediasourceDescErrorMessage.Default.(string)
	// mediasourceDescHasTranscript is the schema descriptor for has_transcript field.
	mediasourceDescHasTranscript := mediasourceFields[7].Descriptor()
	// mediasource.DefaultHasTranscript holds the default value on creation for the has_transcript field.
	mediasource.DefaultHasTranscript = mediasourceDescHasTranscript.Default.(bool)
	// mediasourceDescCreatedAt is the schema descriptor for created_at field.
	mediasourceDescCreatedAt := mediasourceFields[8].Descriptor()
	// mediasource.DefaultCreatedAt holds the default value on creation for the created_at field.
	mediasource.DefaultCreatedAt = mediasourceDescCreatedAt.Default.(func() time.Time)
	// mediasourceDescUpdatedAt is the schema descriptor for updated_at field.
	mediasourceDescUpdatedAt := mediasourceFields[9].Descriptor()
	// mediasource.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mediasource.DefaultUpdatedAt = mediasourceDescUpdatedAt.Default.(func() time.Time)
	// mediasource.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mediasource.UpdateDefaultUpdatedAt = mediasourceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
