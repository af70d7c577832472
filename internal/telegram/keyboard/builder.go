package keyboard

import (
	"github.com/futig/study-portal-ai/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const ActionDownload = "dl"

// Builder creates inline keyboards
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// ExportKeyboard offers the last result as a file in every supported format
func (b *Builder) ExportKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 PDF", EncodeCallback(ActionDownload, string(entity.FormatPDF))),
			tgbotapi.NewInlineKeyboardButtonData("📝 DOCX", EncodeCallback(ActionDownload, string(entity.FormatDOCX))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Markdown", EncodeCallback(ActionDownload, string(entity.FormatMarkdown))),
			tgbotapi.NewInlineKeyboardButtonData("HTML", EncodeCallback(ActionDownload, string(entity.FormatHTML))),
		),
	)
}
