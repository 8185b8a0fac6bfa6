package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=chat_test

// workoutContextWindowDays is the trailing window of workouts embedded
// into the coaching system prompt.
const workoutContextWindowDays = 14

type recentWorkoutsLister interface {
	ListRecent(ctx context.Context, windowDays int) ([]workouts.Workout, error)
}

type completionStreamer interface {
	StreamChat(ctx context.Context, messages []Message, onDelta func(string)) (string, error)
}

type Handler struct {
	workouts recentWorkoutsLister
	streamer completionStreamer
	metrics  *metrics.Manager
}

func NewHandler(
	workoutsLister recentWorkoutsLister,
	streamer completionStreamer,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		workouts: workoutsLister,
		streamer: streamer,
		metrics:  metricsManager,
	}
}

type ChatRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history"`
}

type SuggestionsRequest struct {
	Text string `json:"text"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// HandleMessage streams the coach response back as plain text chunks,
// flushed as they arrive from the model.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.message")
	defer span.End()

	var chatReq ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&chatReq); err != nil {
		log.Errorf("handle chat message, unmarshal json params: %s", err)
		http.Error(w, "error, failed to decode request", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(chatReq.Message) == "" {
		http.Error(w, "error, message is empty", http.StatusBadRequest)
		return
	}

	recent, err := h.workouts.ListRecent(ctx, workoutContextWindowDays)
	if err != nil {
		log.Errorf("handle chat message, list recent workouts: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	messages := make([]Message, 0, len(chatReq.History)+2)
	messages = append(messages, SystemPrompt(recent))
	messages = append(messages, chatReq.History...)
	messages = append(messages, Message{Role: RoleUser, Content: chatReq.Message})

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error("handle chat message, response writer does not support flushing")
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterChatMessages.Inc()
	streamStart := time.Now()

	// headers are written together with the first chunk, so a completion
	// failure before any output can still produce a clean JSON error
	streamed := false
	_, err = h.streamer.StreamChat(ctx, messages, func(delta string) {
		if !streamed {
			setStreamHeaders(w)
			w.WriteHeader(http.StatusOK)
			streamed = true
		}
		if _, writeErr := w.Write([]byte(delta)); writeErr != nil {
			log.Warnf("handle chat message, write chunk: %s", writeErr)
			return
		}
		h.metrics.CounterChatStreamChunks.Inc()
		flusher.Flush()
	})
	h.metrics.HistogramChatStreamSeconds.Observe(time.Since(streamStart).Seconds())

	if err != nil {
		log.Errorf("handle chat message, stream completion: %s", err)
		if !streamed {
			pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		}
		// mid-stream failure terminates the response abruptly, the
		// client sees a truncated body
		return
	}

	if !streamed {
		setStreamHeaders(w)
		w.WriteHeader(http.StatusOK)
	}
}

func setStreamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
}

// HandleSuggestions extracts structured exercise suggestions from
// previously received coach response text.
func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.suggestions")
	defer span.End()

	var req SuggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("handle chat suggestions, unmarshal json params: %s", err)
		http.Error(w, "error, failed to decode request", http.StatusBadRequest)
		return
	}

	suggestions := ExtractSuggestions(req.Text)

	respBytes, err := json.Marshal(SuggestionsResponse{Suggestions: suggestions})
	if err != nil {
		log.Errorf("handle chat suggestions, marshal response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respBytes))
}
