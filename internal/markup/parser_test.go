package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/typeline/pkg/surface"
)

func TestParsePlainText(t *testing.T) {
	assert.Nil(t, Parse(""))
	assert.Equal(t, []Segment{{Text: "hello"}}, Parse("hello"))
}

func TestParseSingleElement(t *testing.T) {
	got := Parse("<b>hi</b>")
	assert.Equal(t, []Segment{{Tag: "b", Text: "hi"}}, got)
	assert.True(t, got[0].IsElement())
}

func TestParseMixedRuns(t *testing.T) {
	got := Parse("Hello <b>world</b>!")
	assert.Equal(t, []Segment{
		{Text: "Hello "},
		{Tag: "b", Text: "world"},
		{Text: "!"},
	}, got)
	assert.False(t, got[0].IsElement())
}

func TestParseAttributes(t *testing.T) {
	got := Parse(`<span color="red" bg="black">x</span>`)
	assert.Equal(t, []Segment{{
		Tag: "span",
		Attrs: []surface.Attr{
			{Key: "color", Value: "red"},
			{Key: "bg", Value: "black"},
		},
		Text: "x",
	}}, got)
}

func TestParseSelfClosing(t *testing.T) {
	got := Parse("a<br/>b")
	assert.Equal(t, []Segment{
		{Text: "a"},
		{Tag: "br"},
		{Text: "b"},
	}, got)
}

func TestParseUnterminatedTag(t *testing.T) {
	// Browsers treat an unclosed element as running to the end of input.
	got := Parse("<b>oops")
	assert.Equal(t, []Segment{{Tag: "b", Text: "oops"}}, got)
}

// Nesting flattens: each segment holds only the text directly inside its
// tag, and text after a closed inner tag reopens the enclosing one.
func TestParseNestedFlattens(t *testing.T) {
	got := Parse("<b>a<i>c</i>d</b>e")
	assert.Equal(t, []Segment{
		{Tag: "b", Text: "a"},
		{Tag: "i", Text: "c"},
		{Tag: "b", Text: "d"},
		{Text: "e"},
	}, got)
}
