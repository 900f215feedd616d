// Package cards holds the exercise card vocabulary shared by generation,
// repetition and ingestion: the closed set of card types, the review
// remapping table, and the tolerant decoder for model-produced card JSON.
package cards

// Type is the pedagogical kind of an exercise card.
type Type string

const (
	TypeRepeat    Type = "repeat"
	TypeTranslate Type = "translate"
	TypeChoose    Type = "choose"
	TypeColor     Type = "color"
	TypeSpeak     Type = "speak"
	TypeMatch     Type = "match"
	TypeSpelling  Type = "spelling"
	TypeNewWords  Type = "new_words"
	TypeWriting   Type = "writing"
)

// AllTypes lists every card type in display order.
var AllTypes = []Type{
	TypeRepeat, TypeTranslate, TypeChoose, TypeColor, TypeSpeak,
	TypeMatch, TypeSpelling, TypeNewWords, TypeWriting,
}

// Valid reports whether t is one of the known card types.
func (t Type) Valid() bool {
	switch t {
	case TypeRepeat, TypeTranslate, TypeChoose, TypeColor, TypeSpeak,
		TypeMatch, TypeSpelling, TypeNewWords, TypeWriting:
		return true
	}
	return false
}

// ParseType maps a model-supplied type name onto a Type. Empty and unknown
// names become TypeRepeat; ok is false only for non-empty unknown names.
func ParseType(s string) (t Type, ok bool) {
	if s == "" {
		return TypeRepeat, true
	}
	t = Type(s)
	if !t.Valid() {
		return TypeRepeat, false
	}
	return t, true
}

// RepetitionTarget returns the type a card of type t is reviewed as, so a
// repeated concept is practiced through a different skill.
func RepetitionTarget(t Type) Type {
	switch t {
	case TypeRepeat, TypeSpeak:
		return TypeWriting
	case TypeTranslate, TypeChoose:
		return TypeSpelling
	case TypeSpelling:
		return TypeRepeat
	case TypeWriting:
		return TypeSpeak
	case TypeNewWords:
		return TypeTranslate
	case TypeColor, TypeMatch:
		return TypeChoose
	default:
		return TypeRepeat
	}
}

// Review prompts shown to the child, keyed by the review card's type.
const (
	PromptSayAloud  = "Повтори вслух эту фразу"
	PromptWrite     = "Напиши слово или фразу"
	PromptAssemble  = "Собери слово из букв"
	PromptTranslate = "Переведи с русского на английский"
	PromptChoose    = "Выбери правильный вариант"
)

// DefaultPrompt returns the instruction used for a review card of type t.
// ok is false for types that keep the source card's prompt.
func DefaultPrompt(t Type) (prompt string, ok bool) {
	switch t {
	case TypeRepeat, TypeSpeak:
		return PromptSayAloud, true
	case TypeWriting:
		return PromptWrite, true
	case TypeSpelling:
		return PromptAssemble, true
	case TypeTranslate:
		return PromptTranslate, true
	case TypeChoose:
		return PromptChoose, true
	default:
		return "", false
	}
}
