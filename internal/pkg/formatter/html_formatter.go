package formatter

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	htmlContentType   = "text/html; charset=utf-8"
	htmlFileExtension = ".html"
)

// HTMLFormatter renders the generated markdown into a standalone page.
// Raw HTML in the source is dropped by goldmark's default renderer.
type HTMLFormatter struct {
	md goldmark.Markdown
}

func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (hf *HTMLFormatter) Format(title, text string) ([]byte, error) {
	var body bytes.Buffer
	if err := hf.md.Convert([]byte(text), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	escaped := html.EscapeString(titleOrDefault(title))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n<h1>%s</h1>\n", escaped, escaped)
	buf.Write(body.Bytes())
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

func (hf *HTMLFormatter) ContentType() string {
	return htmlContentType
}

func (hf *HTMLFormatter) FileExtension() string {
	return htmlFileExtension
}
