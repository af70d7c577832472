package handlers

import (
	"context"
	"errors"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/pkg/logger"
	"github.com/futig/study-portal-ai/internal/telegram/render"
	"github.com/futig/study-portal-ai/internal/telegram/state"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// CommandHandler handles slash commands
type CommandHandler struct {
	BaseHandler
	assistant Assistant
}

func NewCommandHandler(sender Sender, states *state.Manager, assistant Assistant) *CommandHandler {
	return &CommandHandler{
		BaseHandler: NewBaseHandler(sender, states),
		assistant:   assistant,
	}
}

func (h *CommandHandler) Handle(ctx context.Context, msg *Message) error {
	ctx = logger.AddFields(ctx, zap.String("command", msg.Command))

	switch msg.Command {
	case "start":
		h.sendMessage(msg.ChatID, render.MsgWelcome, nil)
	case "help":
		h.sendMessage(msg.ChatID, render.MsgHelp, nil)
	case "reset":
		h.states.Reset(msg.ChatID)
		h.sendMessage(msg.ChatID, render.MsgReset, nil)
	case "summarize", "flashcards", "presentation", "quiz", "plan":
		h.runCommand(ctx, msg)
	default:
		h.sendMessage(msg.ChatID, render.ErrUnknownCommand, nil)
	}
	return nil
}

func (h *CommandHandler) runCommand(ctx context.Context, msg *Message) {
	req, err := buildCommandRequest(msg.Command, msg.Args)
	if errors.Is(err, errMissingInput) {
		h.sendMessage(msg.ChatID, render.UsageFor(msg.Command), nil)
		return
	}
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	result, err := h.generate(ctx, h.assistant, msg.ChatID, req)
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	var topic string
	if plan, ok := req.(entity.StudyPlanRequest); ok {
		topic = plan.Topic
	}

	ctxzap.Info(ctx, "command completed", zap.Int("result_length", len(result.Text)))
	h.deliver(ctx, msg.ChatID, req.Kind(), render.TitleFor(req.Kind(), topic), result.Text)
}
