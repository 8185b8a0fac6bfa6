package visits

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

type ToggleRequest struct {
	Day string `json:"day"`
}

type ToggleResponse struct {
	Day    string `json:"day"`
	Marked bool   `json:"marked"`
}

type ListWeekResponse struct {
	Visits []Visit `json:"visits"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

type Handler struct {
	service *Service
	metrics *metrics.Manager
}

func NewHandler(service *Service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.visits.toggle")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var toggleReq ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&toggleReq); err != nil {
		log.Tracef("toggle visit, unmarshal json params: %s", err)
		http.Error(w, "toggle visit failed", http.StatusBadRequest)
		return
	}

	day, err := time.Parse(DayFormat, toggleReq.Day)
	if err != nil {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	marked, err := h.service.Toggle(ctx, day)
	if err != nil {
		log.Errorf("failed to toggle visit for %s: %s", toggleReq.Day, err)
		http.Error(w, "error, failed to toggle visit", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterVisitToggles.Inc()

	toggleRespJson, err := json.Marshal(ToggleResponse{
		Day:    toggleReq.Day,
		Marked: marked,
	})
	if err != nil {
		log.Errorf("failed to marshal toggle response: %s", err)
		http.Error(w, "failed to marshal toggle response", http.StatusInternalServerError)
		return
	}

	log.Debugf("visit toggled for %s, marked: %t", toggleReq.Day, marked)
	pkg.WriteJSONResponseOK(w, string(toggleRespJson))
}

func (h *Handler) HandleListWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.visits.listweek")
	defer span.End()

	now := time.Now()
	weekVisits, err := h.service.ListWeek(ctx, now)
	if err != nil {
		log.Errorf("list weekly visits error: %s", err)
		http.Error(w, "failed to get weekly visits", http.StatusInternalServerError)
		return
	}

	monday, sundayEnd := WeekRange(now)
	listRespJson, err := json.Marshal(ListWeekResponse{
		Visits: weekVisits,
		From:   monday.Format(DayFormat),
		To:     sundayEnd.Format(DayFormat),
	})
	if err != nil {
		log.Errorf("marshal weekly visits error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}
