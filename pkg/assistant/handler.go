package assistant

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/lifeos/lifeos/pkg/lifedata"
)

type Handler struct {
	service Service
	store   *lifedata.Store
}

func NewHandler(service Service, store *lifedata.Store) *Handler {
	return &Handler{service, store}
}

type insightsRequest struct {
	Query string `json:"query"`
}

type textResponse struct {
	Text string `json:"text"`
}

func (handler *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request insightsRequest
	if r.Body != nil {
		// an empty body means the default focus question
		_ = json.NewDecoder(r.Body).Decode(&request)
	}

	handler.store.Load(r.Context())
	text := handler.service.GenerateLifeInsights(r.Context(), handler.store.Snapshot(), request.Query)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(textResponse{Text: text}); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

type chatRequest struct {
	History []ChatMessage `json:"history"`
	Message string        `json:"message"`
}

func (handler *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request chatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if request.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	text := handler.service.Chat(r.Context(), request.History, request.Message)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(textResponse{Text: text}); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}
