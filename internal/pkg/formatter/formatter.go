package formatter

import (
	"fmt"
	"strings"

	"github.com/futig/study-portal-ai/internal/entity"
)

// DefaultTitle is used when an export carries no title
const DefaultTitle = "Study notes"

type Formatter interface {
	Format(title, text string) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatHTML:
		return NewHTMLFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrUnsupportedFormat, format)
	}
}

func titleOrDefault(title string) string {
	if title = strings.TrimSpace(title); title != "" {
		return title
	}
	return DefaultTitle
}
