// Package markup splits a script string containing inline tags into an
// ordered list of renderable segments: plain text runs, and elements whose
// text content has been extracted so the engine can type it back in one
// character at a time.
package markup

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/aretw0/typeline/pkg/surface"
)

// Segment is one renderable unit of a parsed string. A zero Tag means a
// plain text run; otherwise the segment is a markup element with Text
// holding the characters extracted from it.
type Segment struct {
	Tag   string
	Attrs []surface.Attr
	Text  string
}

// IsElement reports whether the segment is a markup element.
func (s Segment) IsElement() bool { return s.Tag != "" }

// Parse tokenizes s into segments, preserving input order. Nesting is
// flattened: each element holds only the text directly inside it, and text
// resuming after a closed inner tag opens a fresh segment for the still
// enclosing tag. Malformed or unterminated input degrades to text the way
// browsers do; Parse never fails.
func Parse(s string) []Segment {
	if !strings.ContainsRune(s, '<') {
		if s == "" {
			return nil
		}
		return []Segment{{Text: s}}
	}

	tok := html.NewTokenizer(strings.NewReader(s))
	var (
		segs []Segment
		open []Segment // enclosing elements, innermost last
		cur  = -1      // index into segs receiving text, -1 = plain run
	)

	for {
		switch tok.Next() {
		case html.ErrorToken:
			// EOF (the tokenizer has no other error mode for string input).
			return segs

		case html.TextToken:
			text := string(tok.Text())
			if text == "" {
				continue
			}
			if cur < 0 && len(open) > 0 {
				// Text resuming inside an enclosing tag after an inner tag
				// closed: reopen the enclosing element as a new segment.
				inner := open[len(open)-1]
				segs = append(segs, Segment{Tag: inner.Tag, Attrs: inner.Attrs})
				cur = len(segs) - 1
			}
			if cur >= 0 {
				segs[cur].Text += text
			} else {
				segs = append(segs, Segment{Text: text})
			}

		case html.StartTagToken:
			tag, at := startTag(tok)
			segs = append(segs, Segment{Tag: tag, Attrs: at})
			open = append(open, Segment{Tag: tag, Attrs: at})
			cur = len(segs) - 1

		case html.SelfClosingTagToken:
			tag, at := startTag(tok)
			segs = append(segs, Segment{Tag: tag, Attrs: at})
			cur = -1

		case html.EndTagToken:
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
			cur = -1
		}
	}
}

func startTag(tok *html.Tokenizer) (string, []surface.Attr) {
	name, hasAttr := tok.TagName()
	var out []surface.Attr
	for hasAttr {
		key, val, more := tok.TagAttr()
		out = append(out, surface.Attr{Key: string(key), Value: string(val)})
		hasAttr = more
	}
	return string(name), out
}
