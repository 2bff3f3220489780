package breakdown

import (
	"strconv"
	"strings"

	"github.com/llmcouncil/tokenbudget/types"
)

const (
	highlightsIntro = "The user highlighted the following passages and attached comments:"
	stackIntro      = "The user pinned the following source content as standing context:"

	// Placeholders for missing record fields. Formatting never fails;
	// absent data renders as a placeholder instead.
	missingStage = "?"
	missingModel = "the model"
	missingTitle = "Note"
	missingLabel = "Selected segment"
)

// BuildHighlightsText renders annotations into the single text block
// counted against the highlight category. Input order is preserved. An
// empty list yields an empty string, so a conversation without comments
// costs zero highlight tokens.
func BuildHighlightsText(comments []types.Annotation) string {
	if len(comments) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(highlightsIntro)
	for _, c := range comments {
		c = c.Normalize()
		b.WriteString("\n\n")
		if c.SourceType == types.SourceSynthesizer {
			b.WriteString("Comment on note \"" + titleOr(c.NoteTitle) + "\":\n")
		} else {
			b.WriteString("Comment on Stage " + stageOr(c.Stage) + " response from " + modelOr(c.Model) + ":\n")
		}
		b.WriteString("Selected text: \"" + c.Selection + "\"\n")
		b.WriteString("User comment: " + c.Content)
	}
	return strings.TrimSpace(b.String())
}

// BuildContextStackText renders pinned segments into the single text block
// counted against the context-stack category. Same contract as
// BuildHighlightsText: order preserved, empty input yields "".
func BuildContextStackText(segments []types.ContextSegment) string {
	if len(segments) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(stackIntro)
	for _, s := range segments {
		s = s.Normalize()
		b.WriteString("\n\n")
		if s.SourceType == types.SourceSynthesizer {
			b.WriteString(labelOr(s.Label) + " (Note: " + titleOr(s.NoteTitle) + "):\n")
		} else {
			b.WriteString(labelOr(s.Label) + " (Stage " + stageOr(s.Stage) + " · " + modelOr(s.Model) + "):\n")
		}
		b.WriteString(strings.TrimSpace(s.Content))
	}
	return strings.TrimSpace(b.String())
}

func stageOr(stage int) string {
	if stage <= 0 {
		return missingStage
	}
	return strconv.Itoa(stage)
}

func modelOr(model string) string {
	if model == "" {
		return missingModel
	}
	return model
}

func titleOr(title string) string {
	if title == "" {
		return missingTitle
	}
	return title
}

func labelOr(label string) string {
	if label == "" {
		return missingLabel
	}
	return label
}
