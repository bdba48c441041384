package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/maverickkamal/scio-planning/internal/config"
	"github.com/maverickkamal/scio-planning/internal/model"
	"github.com/maverickkamal/scio-planning/internal/pkg/tx"
)

type Handler struct {
	repository DBRepo
	replies    ReplyProvider
	validator  Validator
}

func New(repo DBRepo, replies ReplyProvider, validator Validator) *Handler {
	return &Handler{
		repository: repo,
		replies:    replies,
		validator:  validator,
	}
}

// AppendChat stores one full exchange: the human turn under a fresh
// time-derived message id and the assistant turn under the next id, then
// returns the reply text. Sorting the record by numeric id reproduces send
// order.
func (h *Handler) AppendChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AppendChat")

	var req AppendChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateAppend(&req); err != nil {
		logger.Error(fmt.Sprintf("append validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	callerID, _ := r.Context().Value(config.KeyUUID).(string)

	reply, err := h.replies.Reply(r.Context(), callerID, req.Message)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to produce reply: %v", err))
		h.writeError(w, "failed to produce reply", http.StatusInternalServerError)
		return
	}

	messageID := time.Now().UnixMilli()
	entries := map[int64]model.Entry{
		messageID:     {Role: model.HumanRole, Content: req.Message},
		messageID + 1: {Role: model.AssistantRole, Content: reply},
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.AddEntries(ctx, req.ChatID, entries)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to save exchange: %v", err))
		h.writeError(w, "failed to save exchange", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, AppendChatResponse{Content: reply}, http.StatusOK)
}

// GetChat returns the conversation record in chronological order.
func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetChat")

	chatID := r.URL.Query().Get("chatId")
	if chatID == "" {
		logger.Error("chatId query parameter is missing")
		h.writeError(w, "Chat ID is required", http.StatusBadRequest)
		return
	}

	entries, err := h.repository.GetMessages(r.Context(), chatID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, "failed to fetch messages", http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []model.Entry{}
	}

	h.writeJSON(w, entries, http.StatusOK)
}

// RenameChat sets the conversation title.
func (h *Handler) RenameChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RenameChat")

	var req RenameChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateRename(&req); err != nil {
		logger.Error(fmt.Sprintf("rename validation failed: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repository.Rename(r.Context(), req.ChatID, req.NewTitle); err != nil {
		logger.Error(fmt.Sprintf("failed to rename conversation: %v", err))
		h.writeError(w, "failed to rename conversation", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, RenameChatResponse{Success: true}, http.StatusOK)
}

// GetHistory lists all conversations with their last-message previews.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetHistory")

	summaries, err := h.repository.ListSummaries(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list conversations: %v", err))
		h.writeError(w, "failed to list conversations", http.StatusInternalServerError)
		return
	}

	result := model.ChatSummaryList{}
	if summaries != nil {
		result = *summaries
	}

	h.writeJSON(w, result, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}
