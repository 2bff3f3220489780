package types

import "github.com/google/uuid"

// SourceType identifies which domain a reviewed piece of content came from.
type SourceType string

const (
	// SourceCouncil marks content produced by a multi-model council
	// deliberation. Council records carry a stage number and a model
	// identifier.
	SourceCouncil SourceType = "council"

	// SourceSynthesizer marks content produced from a generated note.
	// Synthesizer records carry a note identifier and title.
	SourceSynthesizer SourceType = "synthesizer"
)

// Annotation is a user highlight plus free-text comment attached to a
// specific piece of generated content.
//
// Council annotations use Stage and Model; synthesizer annotations use
// NoteID and NoteTitle. Records are read-only for this module: editing and
// deletion happen in the surrounding application.
type Annotation struct {
	ID         string     `json:"id,omitempty"`
	SourceType SourceType `json:"source_type,omitempty"`

	// Selection is the highlighted substring. May be empty.
	Selection string `json:"selection,omitempty"`

	// Content is the user's comment text.
	Content string `json:"content,omitempty"`

	Stage int    `json:"stage,omitempty"`
	Model string `json:"model,omitempty"`

	NoteID    string `json:"note_id,omitempty"`
	NoteTitle string `json:"note_title,omitempty"`
}

// NewAnnotation returns a normalized copy of a with an ID assigned when the
// caller did not provide one.
func NewAnnotation(a Annotation) Annotation {
	a = a.Normalize()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return a
}

// Normalize resolves the source-type defaulting rule: a record with no
// explicit source type is synthesizer when it carries note fields, council
// otherwise. Returns a copy; the input is never mutated.
func (a Annotation) Normalize() Annotation {
	if a.SourceType == "" {
		if a.NoteID != "" || a.NoteTitle != "" {
			a.SourceType = SourceSynthesizer
		} else {
			a.SourceType = SourceCouncil
		}
	}
	return a
}

// ContextSegment is a larger, user-pinned block of full source content
// (a whole stage response or a whole note) kept as standing context for
// follow-up questions, distinct from a point annotation.
type ContextSegment struct {
	ID         string     `json:"id,omitempty"`
	SourceType SourceType `json:"source_type,omitempty"`

	// Label is the display name shown for the segment.
	Label string `json:"label,omitempty"`

	// Content is the full pinned text.
	Content string `json:"content,omitempty"`

	Stage int    `json:"stage,omitempty"`
	Model string `json:"model,omitempty"`

	NoteID    string `json:"note_id,omitempty"`
	NoteTitle string `json:"note_title,omitempty"`
}

// NewContextSegment returns a normalized copy of s with an ID assigned when
// the caller did not provide one.
func NewContextSegment(s ContextSegment) ContextSegment {
	s = s.Normalize()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return s
}

// Normalize resolves the source-type defaulting rule for segments, keyed on
// the presence of a note identifier.
func (s ContextSegment) Normalize() ContextSegment {
	if s.SourceType == "" {
		if s.NoteID != "" {
			s.SourceType = SourceSynthesizer
		} else {
			s.SourceType = SourceCouncil
		}
	}
	return s
}
