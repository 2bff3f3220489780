package breakdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/llmcouncil/tokenbudget/types"
)

func genAnnotation() *rapid.Generator[types.Annotation] {
	return rapid.Custom(func(rt *rapid.T) types.Annotation {
		return types.Annotation{
			SourceType: rapid.SampledFrom([]types.SourceType{"", types.SourceCouncil, types.SourceSynthesizer}).Draw(rt, "source_type"),
			Selection:  rapid.StringN(0, 80, -1).Draw(rt, "selection"),
			Content:    rapid.StringN(0, 200, -1).Draw(rt, "content"),
			Stage:      rapid.IntRange(0, 4).Draw(rt, "stage"),
			Model:      rapid.SampledFrom([]string{"", "openai/gpt-4o", "anthropic/claude-3-opus"}).Draw(rt, "model"),
			NoteID:     rapid.SampledFrom([]string{"", "n1"}).Draw(rt, "note_id"),
			NoteTitle:  rapid.StringN(0, 40, -1).Draw(rt, "note_title"),
		}
	})
}

func genSegment() *rapid.Generator[types.ContextSegment] {
	return rapid.Custom(func(rt *rapid.T) types.ContextSegment {
		return types.ContextSegment{
			SourceType: rapid.SampledFrom([]types.SourceType{"", types.SourceCouncil, types.SourceSynthesizer}).Draw(rt, "source_type"),
			Label:      rapid.StringN(0, 40, -1).Draw(rt, "label"),
			Content:    rapid.StringN(0, 500, -1).Draw(rt, "content"),
			Stage:      rapid.IntRange(0, 4).Draw(rt, "stage"),
			Model:      rapid.SampledFrom([]string{"", "openai/gpt-4o-mini"}).Draw(rt, "model"),
			NoteID:     rapid.SampledFrom([]string{"", "n1"}).Draw(rt, "note_id"),
			NoteTitle:  rapid.StringN(0, 40, -1).Draw(rt, "note_title"),
		}
	})
}

func genInput() *rapid.Generator[Input] {
	return rapid.Custom(func(rt *rapid.T) Input {
		return Input{
			Question: rapid.StringN(0, 200, -1).Draw(rt, "question"),
			Comments: rapid.SliceOfN(genAnnotation(), 0, 5).Draw(rt, "comments"),
			Segments: rapid.SliceOfN(genSegment(), 0, 5).Draw(rt, "segments"),
			Model:    rapid.StringN(0, 40, -1).Draw(rt, "model"),
		}
	})
}

func TestProperty_SumInvariant(t *testing.T) {
	c := New()
	rapid.Check(t, func(rt *rapid.T) {
		got := c.Compute(genInput().Draw(rt, "input"))
		require.Equal(rt, got.PromptTokens+got.HighlightTokens+got.StackTokens, got.Total)
		require.GreaterOrEqual(rt, got.PromptTokens, 0)
		require.GreaterOrEqual(rt, got.HighlightTokens, 0)
		require.GreaterOrEqual(rt, got.StackTokens, 0)
	})
}

func TestProperty_Deterministic(t *testing.T) {
	c := New()
	rapid.Check(t, func(rt *rapid.T) {
		in := genInput().Draw(rt, "input")
		require.Equal(rt, c.Compute(in), c.Compute(in))
	})
}

func TestProperty_EncodingAlwaysNamed(t *testing.T) {
	c := New()
	rapid.Check(t, func(rt *rapid.T) {
		got := c.Compute(genInput().Draw(rt, "input"))
		require.Contains(rt, []string{"o200k_base", "cl100k_base"}, got.EncodingName)
	})
}

func TestProperty_HighlightsOrderPreserved(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(rt, "n")
		comments := make([]types.Annotation, n)
		for i := range comments {
			// Distinct, searchable markers per comment.
			comments[i] = types.Annotation{Content: "marker-" + strings.Repeat("x", i+1)}
		}

		got := BuildHighlightsText(comments)
		prev := -1
		for i := n - 1; i >= 0; i-- {
			// Search longest marker first; shorter markers are prefixes.
			idx := strings.Index(got, "User comment: marker-"+strings.Repeat("x", i+1))
			require.NotEqual(rt, -1, idx)
			if prev != -1 {
				require.Less(rt, idx, prev)
			}
			prev = idx
		}
	})
}

func TestProperty_EmptyListsCostNothing(t *testing.T) {
	c := New()
	rapid.Check(t, func(rt *rapid.T) {
		question := rapid.StringN(0, 100, -1).Draw(rt, "question")
		model := rapid.StringN(0, 40, -1).Draw(rt, "model")

		got := c.Compute(Input{Question: question, Model: model})
		assert.Zero(rt, got.HighlightTokens)
		assert.Zero(rt, got.StackTokens)
		assert.Equal(rt, got.PromptTokens, got.Total)
	})
}
