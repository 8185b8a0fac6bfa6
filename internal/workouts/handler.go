package workouts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type DeleteWorkoutResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
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

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.Exercise == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}

	addedWorkout, err := handler.service.Create(ctx, workout)
	if err != nil {
		log.Errorf("failed to add new workout [%s]: %s", workout.Exercise, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkouts.Inc()

	addedWorkoutJson, err := json.Marshal(addedWorkout)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: %s", addedWorkoutJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedWorkoutJson, http.StatusCreated)
}

func (handler *Handler) HandleAddBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.newbatch")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var batch []Workout
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		log.Tracef("new workouts batch, unmarshal json params: %s", err)
		http.Error(w, "add workouts failed", http.StatusBadRequest)
		return
	}

	if len(batch) == 0 {
		http.Error(w, "error, empty workouts batch", http.StatusBadRequest)
		return
	}
	for _, workout := range batch {
		if workout.Exercise == "" {
			http.Error(w, "error, exercise name empty", http.StatusBadRequest)
			return
		}
	}

	addedWorkouts, err := handler.service.CreateBatch(ctx, batch)
	if err != nil {
		log.Errorf("failed to add workouts batch (%d workouts): %s", len(batch), err)
		http.Error(w, "error, failed to add workouts", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkouts.Add(float64(len(addedWorkouts)))

	addedWorkoutsJson, err := json.Marshal(addedWorkouts)
	if err != nil {
		log.Errorf("failed to marshal added workouts: %s", err)
		http.Error(w, "error, failed to add workouts", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workouts batch added: %d workouts", len(addedWorkouts))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedWorkoutsJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout %d: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			log.Debugf("workout %d not found", id)
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteWorkoutResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	workouts, err := handler.service.List(ctx)
	if err != nil {
		log.Errorf("list workouts error: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Workouts: workouts,
		Total:    len(workouts),
	})
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}
