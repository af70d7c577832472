package handlers

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/pkg/formatter"
	"github.com/futig/study-portal-ai/internal/telegram/render"
	"github.com/futig/study-portal-ai/internal/telegram/state"
)

type sentMessage struct {
	chatID int64
	text   string
	markup any
}

type sentDocument struct {
	chatID   int64
	filename string
	data     []byte
}

type fakeSender struct {
	mu        sync.Mutex
	messages  []sentMessage
	documents []sentDocument
	answers   []string
}

func (s *fakeSender) Send(chatID int64, text string, markup any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, sentMessage{chatID, text, markup})
	return nil
}

func (s *fakeSender) SendDocument(chatID int64, filename string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, sentDocument{chatID, filename, data})
	return nil
}

func (s *fakeSender) Typing(chatID int64) error { return nil }

func (s *fakeSender) AnswerCallback(callbackID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = append(s.answers, text)
	return nil
}

func (s *fakeSender) last() sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages[len(s.messages)-1]
}

type fakeAssistant struct {
	requests []entity.AiRequest
	text     string
	err      error
}

func (a *fakeAssistant) Generate(ctx context.Context, req entity.AiRequest) (*entity.Result, error) {
	a.requests = append(a.requests, req)
	if a.err != nil {
		return nil, a.err
	}
	return &entity.Result{Text: a.text}, nil
}

func newStates() *state.Manager {
	return state.NewManager(state.NewCacheStorage(time.Hour), 20)
}

func TestChatHandler_KeepsHistory(t *testing.T) {
	sender := &fakeSender{}
	states := newStates()
	assistant := &fakeAssistant{text: "A measure of disorder."}
	h := NewChatHandler(sender, states, assistant)

	h.Handle(context.Background(), &Message{ChatID: 7, Text: "What is entropy?"})
	assistant.text = "Heat content."
	h.Handle(context.Background(), &Message{ChatID: 7, Text: "And enthalpy?"})

	second := assistant.requests[1].(entity.ChatRequest)
	if len(second.History) != 3 {
		t.Fatalf("expected 3 turns in second request, got %d", len(second.History))
	}
	if second.History[0].Content != "What is entropy?" ||
		second.History[1].Role != entity.RoleAssistant ||
		second.History[2].Content != "And enthalpy?" {
		t.Errorf("unexpected history: %+v", second.History)
	}

	if got := sender.last().text; got != "Heat content." {
		t.Errorf("unexpected reply %q", got)
	}
	if len(states.History(7)) != 4 {
		t.Errorf("expected 4 stored turns, got %d", len(states.History(7)))
	}
}

func TestChatHandler_ErrorDoesNotExtendHistory(t *testing.T) {
	sender := &fakeSender{}
	states := newStates()
	assistant := &fakeAssistant{err: entity.ClassifyStatus(429, "busy")}
	h := NewChatHandler(sender, states, assistant)

	h.Handle(context.Background(), &Message{ChatID: 7, Text: "hello"})

	if len(states.History(7)) != 0 {
		t.Error("failed turns must not be stored")
	}
	if got := sender.last().text; got != render.ErrRateLimited {
		t.Errorf("unexpected error message %q", got)
	}
}

func TestCommandHandler_Generate(t *testing.T) {
	sender := &fakeSender{}
	states := newStates()
	assistant := &fakeAssistant{text: "Plan: week 1"}
	h := NewCommandHandler(sender, states, assistant)

	h.Handle(context.Background(), &Message{ChatID: 1, Command: "plan", Args: " Thermodynamics "})

	req, ok := assistant.requests[0].(entity.StudyPlanRequest)
	if !ok || req.Topic != "Thermodynamics" {
		t.Fatalf("unexpected request %#v", assistant.requests[0])
	}

	reply := sender.last()
	if reply.text != "Plan: week 1" || reply.markup == nil {
		t.Errorf("result must be sent with export buttons: %+v", reply)
	}

	last, ok := states.LastResult(1)
	if !ok || last.Title != "Study plan: Thermodynamics" || last.Text != "Plan: week 1" {
		t.Errorf("unexpected last result %+v", last)
	}
}

func TestCommandHandler_Usage(t *testing.T) {
	sender := &fakeSender{}
	assistant := &fakeAssistant{}
	h := NewCommandHandler(sender, newStates(), assistant)

	h.Handle(context.Background(), &Message{ChatID: 1, Command: "summarize"})

	if len(assistant.requests) != 0 {
		t.Error("empty input must not reach the assistant")
	}
	if got := sender.last().text; got != render.UsageFor("summarize") {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestCommandHandler_Reset(t *testing.T) {
	sender := &fakeSender{}
	states := newStates()
	states.AppendHistory(1, entity.ChatTurn{Role: entity.RoleUser, Content: "q"})
	h := NewCommandHandler(sender, states, &fakeAssistant{})

	h.Handle(context.Background(), &Message{ChatID: 1, Command: "reset"})

	if len(states.History(1)) != 0 {
		t.Error("history must be cleared")
	}
	if sender.last().text != render.MsgReset {
		t.Errorf("unexpected reply %q", sender.last().text)
	}
}

func TestCommandHandler_LongResultIsSplit(t *testing.T) {
	sender := &fakeSender{}
	assistant := &fakeAssistant{text: strings.Repeat("word ", 2000)}
	h := NewCommandHandler(sender, newStates(), assistant)

	h.Handle(context.Background(), &Message{ChatID: 1, Command: "summarize", Args: "notes"})

	if len(sender.messages) < 3 {
		t.Fatalf("expected the result to be split, got %d messages", len(sender.messages))
	}
	for i, m := range sender.messages {
		if (m.markup != nil) != (i == len(sender.messages)-1) {
			t.Errorf("only the last chunk carries export buttons (chunk %d)", i)
		}
	}
}

func TestCallbackHandler_Export(t *testing.T) {
	sender := &fakeSender{}
	states := newStates()
	states.SetLastResult(3, &state.LastResult{Kind: entity.OperationSummarize, Title: "Summary", Text: "short"})
	h := NewCallbackHandler(sender, states, formatter.NewFactory())

	if err := h.Handle(context.Background(), &Message{ChatID: 3, CallbackID: "cb", CallbackData: "dl:markdown"}); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(sender.documents) != 1 {
		t.Fatalf("expected one document, got %d", len(sender.documents))
	}
	doc := sender.documents[0]
	if doc.filename != "Summary.md" || string(doc.data) != "# Summary\n\nshort\n" {
		t.Errorf("unexpected document %s %q", doc.filename, doc.data)
	}
}

func TestCallbackHandler_NothingToExport(t *testing.T) {
	sender := &fakeSender{}
	h := NewCallbackHandler(sender, newStates(), formatter.NewFactory())

	h.Handle(context.Background(), &Message{ChatID: 3, CallbackID: "cb", CallbackData: "dl:pdf"})

	if len(sender.documents) != 0 || sender.last().text != render.MsgNothingSave {
		t.Errorf("expected a hint, got %+v", sender.messages)
	}
}

func TestCallbackHandler_UnknownFormat(t *testing.T) {
	sender := &fakeSender{}
	states := newStates()
	states.SetLastResult(3, &state.LastResult{Text: "x"})
	h := NewCallbackHandler(sender, states, formatter.NewFactory())

	err := h.Handle(context.Background(), &Message{ChatID: 3, CallbackID: "cb", CallbackData: "dl:odt"})
	if !errors.Is(err, entity.ErrUnsupportedFormat) {
		t.Errorf("expected unsupported format, got %v", err)
	}
}
