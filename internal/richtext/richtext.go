// Package richtext turns content-service rich text (markdown, possibly with inline HTML)
// into plain text for the terminal.
package richtext

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Raw HTML passes through goldmark so that bluemonday decides what survives.
var (
	md     = goldmark.New(goldmark.WithRendererOptions(gmhtml.WithUnsafe()))
	policy = bluemonday.StrictPolicy()
)

// Plain renders src as plain text. Paragraphs are separated by one blank line.
// Input that fails to render is returned trimmed.
func Plain(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return src
	}
	out := buf.String()
	// keep block boundaries before the tags are stripped
	for _, tag := range []string{"</p>", "</li>", "</h1>", "</h2>", "</h3>", "</h4>", "<br>", "<br />"} {
		out = strings.ReplaceAll(out, tag, tag+"\n")
	}
	text := html.UnescapeString(policy.Sanitize(out))
	return collapse(text)
}

func collapse(s string) string {
	lines := strings.Split(s, "\n")
	paras := make([]string, 0, len(lines))
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, " "))
			cur = nil
		}
	}
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return strings.Join(paras, "\n\n")
}
