// Package richtext carries the pre-resolved text values used for titles,
// subtitles, footnotes, and source notes. Markup parsing happens upstream;
// this package only distinguishes plain strings from already-rendered HTML
// fragments and sanitizes the latter at the ingestion boundary.
package richtext

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Format identifies how a Text's content should be treated by renderers.
type Format string

const (
	FormatPlain Format = "plain"
	FormatHTML  Format = "html"
)

// Text is an immutable rich-text value. The zero value is empty plain text.
type Text struct {
	format  Format
	content string
}

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy

	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

func fragmentPolicy() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("style").OnElements("span", "em", "strong", "sub", "sup")
		htmlPolicy = policy
	})
	return htmlPolicy
}

func textOnlyPolicy() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

// Plain wraps a literal string. Renderers escape it as needed.
func Plain(s string) Text {
	return Text{format: FormatPlain, content: s}
}

// HTML wraps an already-rendered HTML fragment. The fragment is sanitized
// once here so renderers can emit it verbatim.
func HTML(markup string) Text {
	cleaned := strings.TrimSpace(fragmentPolicy().Sanitize(markup))
	return Text{format: FormatHTML, content: cleaned}
}

// IsZero reports whether the value holds no content.
func (t Text) IsZero() bool {
	return t.content == ""
}

// Format returns the value's format. The zero value reports FormatPlain.
func (t Text) Format() Format {
	if t.format == "" {
		return FormatPlain
	}
	return t.format
}

// Content returns the raw content: the literal string for plain text, the
// sanitized fragment for HTML.
func (t Text) Content() string {
	return t.content
}

// HTML returns markup safe to embed in an HTML document: plain content is
// escaped, HTML content was already sanitized at construction.
func (t Text) HTML() string {
	if t.Format() == FormatHTML {
		return t.content
	}
	return html.EscapeString(t.content)
}

// PlainText returns a tags-stripped rendition suitable for text backends.
func (t Text) PlainText() string {
	if t.Format() == FormatPlain {
		return t.content
	}
	return strings.TrimSpace(textOnlyPolicy().Sanitize(t.content))
}

type textJSON struct {
	Format  Format `json:"format"`
	Content string `json:"content"`
}

// MarshalJSON encodes the value as {"format","content"}.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(textJSON{Format: t.Format(), Content: t.content})
}

// UnmarshalJSON decodes the value, re-sanitizing HTML content so a tampered
// payload cannot smuggle markup past the ingestion boundary.
func (t *Text) UnmarshalJSON(data []byte) error {
	var raw textJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("richtext: decode text: %w", err)
	}
	switch raw.Format {
	case FormatHTML:
		*t = HTML(raw.Content)
	case FormatPlain, "":
		*t = Plain(raw.Content)
	default:
		return fmt.Errorf("richtext: unknown format %q", raw.Format)
	}
	return nil
}
