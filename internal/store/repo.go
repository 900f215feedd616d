package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// MediaStatus is the coarse lifecycle state of a media source.
type MediaStatus string

const (
	StatusPending    MediaStatus = "pending"
	StatusProcessing MediaStatus = "processing"
	StatusDone       MediaStatus = "done"
	StatusError      MediaStatus = "error"
)

// Stage is the finer-grained processing step shown while a run is in flight.
type Stage string

const (
	StageIdle             Stage = "idle"
	StageTranscribing     Stage = "transcribing"
	StageGeneratingLesson Stage = "generating_lesson"
	StageDone             Stage = "done"
	StageError            Stage = "error"
)

// Media is a tracked video file.
type Media struct {
	ID                int
	Path              string
	Name              string
	Size              int64
	Status            MediaStatus
	Stage             Stage
	ProcessingMessage string
	ErrorMessage      string
	HasTranscript     bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ProcessedAt       *time.Time
}

// NewMedia describes a file to register.
type NewMedia struct {
	Path      string
	Name      string
	Size      int64
	CreatedAt time.Time
}

// Lesson is a persisted lesson. Cards is populated only by calls that say so.
type Lesson struct {
	ID             int
	MediaID        int
	Title          string
	Description    string
	TranscriptText string
	RawResponse    string
	LanguageLevel  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CardCount      int
	Cards          []Card
}

// NewLesson holds the fields written when a lesson is created.
type NewLesson struct {
	MediaID        int
	Title          string
	Description    string
	TranscriptText string
	RawResponse    string
	LanguageLevel  string
}

// Card is a persisted exercise card.
type Card struct {
	ID              int
	LessonID        int
	CardType        string
	QuestionText    string
	PromptText      string
	CorrectAnswer   *string
	Options         []any
	ExtraData       map[string]any
	OrderIndex      int
	Topic           string
	IsRepetition    bool
	OriginalCardID  *int
	IconName        *string
	ImageURL        *string
	TranslationText *string
	HintText        *string
}

// LessonSummary is the short description of a past lesson fed back to the
// model so it avoids repeating topics.
type LessonSummary struct {
	ID        int
	Title     string
	Topics    []string
	CardCount int
	CreatedAt time.Time
}

// ListOpts filters media listings.
type ListOpts struct {
	Status MediaStatus // empty = any
	Limit  int         // 0 = unlimited
}

// StatusUpdate changes lifecycle fields of a media source. Nil pointers are
// left untouched.
type StatusUpdate struct {
	Status        *MediaStatus
	Stage         *Stage
	Message       *string
	ErrorMessage  *string
	HasTranscript *bool
}

// MediaRepo manages media sources.
type MediaRepo interface {
	// Register inserts a pending media source. When the path is already
	// registered it returns the existing row and created=false.
	Register(ctx context.Context, m NewMedia) (media *Media, created bool, err error)

	Get(ctx context.Context, id int) (*Media, error)
	GetByPath(ctx context.Context, path string) (*Media, error)

	// List returns media ordered by creation time, newest first.
	List(ctx context.Context, opts ListOpts) ([]Media, error)

	// ListNotDone returns every media source not yet done, oldest first.
	ListNotDone(ctx context.Context) ([]Media, error)

	// ListStuck returns processing media last touched before cutoff.
	ListStuck(ctx context.Context, cutoff time.Time) ([]Media, error)

	UpdateStatus(ctx context.Context, id int, u StatusUpdate) error

	// MarkDone sets done/done, stamps processed_at and clears the error.
	MarkDone(ctx context.Context, id int, message string) error

	// MarkError sets error/error with a progress message and error detail.
	MarkError(ctx context.Context, id int, message, detail string) error

	// ResetPending returns an item to pending/idle and clears messages.
	ResetPending(ctx context.Context, id int) error

	CountByStatus(ctx context.Context) (map[MediaStatus]int, error)
}

// LessonRepo manages lessons and their cards.
type LessonRepo interface {
	// ForMedia returns the lesson attached to a media source, or nil.
	ForMedia(ctx context.Context, mediaID int) (*Lesson, error)

	// Get returns a lesson, with cards ordered by order index when withCards.
	Get(ctx context.Context, id int, withCards bool) (*Lesson, error)

	Create(ctx context.Context, l NewLesson) (*Lesson, error)

	// AddCards inserts all cards in a single bulk statement.
	AddCards(ctx context.Context, lessonID int, cards []Card) (int, error)

	// Delete removes a lesson and its cards.
	Delete(ctx context.Context, id int) error

	// RecentSummaries returns up to limit lessons, newest first, skipping
	// the lesson owned by excludeMediaID (0 = none).
	RecentSummaries(ctx context.Context, limit, excludeMediaID int) ([]LessonSummary, error)

	// CardsExcludingLesson returns every non-review card belonging to a
	// lesson other than lessonID (0 = none excluded).
	CardsExcludingLesson(ctx context.Context, lessonID int) ([]Card, error)

	Count(ctx context.Context) (int, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string
	RunID   string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	RunID        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	StopReason   string
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for a group of requests.
type LLMUsage struct {
	Key          string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
