package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"tanim-backend/internal/chat"
	"tanim-backend/internal/database"
	"tanim-backend/pkg/api"
)

// historyWindow caps how many messages a chat or history response carries.
const historyWindow = 50

type ChatService struct {
	db *gorm.DB
}

// NewChatService accepts a nil db; endpoints then report the database as
// not configured instead of failing at startup.
func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

func (s *ChatService) AddRoutes(r chi.Router) {
	r.Post("/api/chat", RestHandler(s.SubmitChatTurn))
	r.Get("/api/history", RestHandler(s.GetHistory))
}

// SubmitChatTurn persists the user message, generates and persists the
// assistant reply, and returns the session's recent history window. If the
// assistant write fails after the user write succeeded, the user row stays
// persisted; there is no rollback.
func (s *ChatService) SubmitChatTurn(r *http.Request) (any, error) {
	if s.db == nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "database not configured")
	}

	req, err := ParseRequest[api.ChatRequest](r)
	if err != nil {
		return nil, err
	}

	if req.SessionID == "" {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "session_id is required")
	}
	if req.Message == "" {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "message must not be empty")
	}

	ctx := r.Context()

	userMessage := &database.Message{
		SessionID: req.SessionID,
		Role:      database.RoleUser,
		Content:   req.Message,
		Model:     req.Model,
	}
	if err := chat.SaveMessage(s.db.WithContext(ctx), userMessage); err != nil {
		slog.Error("error saving user message", "session_id", req.SessionID, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to save message")
	}

	assistantMessage := &database.Message{
		SessionID: req.SessionID,
		Role:      database.RoleAssistant,
		Content:   chat.GenerateReply(req.Message),
		Model:     req.Model,
	}
	if err := chat.SaveMessage(s.db.WithContext(ctx), assistantMessage); err != nil {
		slog.Error("error saving assistant message", "session_id", req.SessionID, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to save message")
	}

	return s.historyResponse(ctx, req.SessionID)
}

// GetHistory returns up to the 50 most recent messages for a session. An
// unknown session yields an empty list, not an error.
func (s *ChatService) GetHistory(r *http.Request) (any, error) {
	if s.db == nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "database not configured")
	}

	query, err := ParseRequestQueryParams[api.HistoryQuery](r)
	if err != nil {
		return nil, err
	}

	if query.SessionID == "" {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "session_id is required")
	}

	return s.historyResponse(r.Context(), query.SessionID)
}

func (s *ChatService) historyResponse(ctx context.Context, sessionID string) (any, error) {
	records, err := chat.RecentMessages(s.db.WithContext(ctx), sessionID, historyWindow)
	if err != nil {
		slog.Error("error loading chat history", "session_id", sessionID, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to load history")
	}

	messages := make([]api.ChatMessage, 0, len(records))
	for _, record := range records {
		messages = append(messages, api.ChatMessage{
			Role:      record.Role,
			Content:   record.Content,
			CreatedAt: record.CreatedAt,
		})
	}

	return api.ChatResponse{SessionID: sessionID, Messages: messages}, nil
}
