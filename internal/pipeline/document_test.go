package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestGoldmarkConverterToHTML(t *testing.T) {
	converter := NewGoldmarkConverter()

	html, err := converter.ToHTML(context.Background(), "Report", "# Hello\n\nSome *text*.")
	if err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Report</title>",
		"Hello</h1>",
		"<em>text</em>",
		"</head>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("ToHTML() output missing %q:\n%s", want, html)
		}
	}
}

func TestGoldmarkConverterEscapesTitle(t *testing.T) {
	converter := NewGoldmarkConverter()

	html, err := converter.ToHTML(context.Background(), `A <"B"> & C`, "body")
	if err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}
	if strings.Contains(html, `<title>A <"B"> & C</title>`) {
		t.Errorf("ToHTML() left title unescaped:\n%s", html)
	}
	if !strings.Contains(html, "<title>A &lt;&#34;B&#34;&gt; &amp; C</title>") {
		t.Errorf("ToHTML() missing escaped title:\n%s", html)
	}
}

func TestGoldmarkConverterCancelledContext(t *testing.T) {
	converter := NewGoldmarkConverter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := converter.ToHTML(ctx, "t", "# x"); err == nil {
		t.Error("ToHTML() with cancelled context succeeded, want error")
	}
}
