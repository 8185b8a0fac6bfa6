package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/2beens/fitlog/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) deleteAllWorkouts(ctx context.Context) {
	_, err := s.dbPool.Exec(ctx, "DELETE FROM workout")
	require.NoError(s.T(), err)
}

func (s *IntegrationTestSuite) countWorkouts(ctx context.Context) int {
	var count int
	err := s.dbPool.QueryRow(ctx, "SELECT COUNT(*) FROM workout").Scan(&count)
	require.NoError(s.T(), err)
	return count
}

func (s *IntegrationTestSuite) newWorkoutRequest(
	ctx context.Context,
	workout workouts.Workout,
) workouts.Workout {
	workoutJson, err := json.Marshal(workout)
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST", fmt.Sprintf("%s/workouts", serverEndpoint),
		bytes.NewReader(workoutJson),
	)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var addedWorkout workouts.Workout
	require.NoError(s.T(), json.Unmarshal(respBytes, &addedWorkout))

	return addedWorkout
}

func (s *IntegrationTestSuite) newWorkoutsBatchRequest(
	ctx context.Context,
	batch []workouts.Workout,
) []workouts.Workout {
	batchJson, err := json.Marshal(batch)
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST", fmt.Sprintf("%s/workouts/batch", serverEndpoint),
		bytes.NewReader(batchJson),
	)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var addedWorkouts []workouts.Workout
	require.NoError(s.T(), json.Unmarshal(respBytes, &addedWorkouts))

	return addedWorkouts
}

func (s *IntegrationTestSuite) getWorkoutRequest(ctx context.Context, id int) (workouts.Workout, int) {
	req, err := http.NewRequestWithContext(
		ctx,
		"GET", fmt.Sprintf("%s/workouts/%d", serverEndpoint, id),
		nil,
	)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return workouts.Workout{}, resp.StatusCode
	}

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var workout workouts.Workout
	require.NoError(s.T(), json.Unmarshal(respBytes, &workout))
	return workout, resp.StatusCode
}

func (s *IntegrationTestSuite) deleteWorkoutRequest(ctx context.Context, id int) (workouts.DeleteWorkoutResponse, int) {
	req, err := http.NewRequestWithContext(
		ctx,
		"DELETE", fmt.Sprintf("%s/workouts/%d", serverEndpoint, id),
		nil,
	)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return workouts.DeleteWorkoutResponse{}, resp.StatusCode
	}

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var deleteResp workouts.DeleteWorkoutResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &deleteResp))
	return deleteResp, resp.StatusCode
}

func (s *IntegrationTestSuite) listWorkoutsRequest(ctx context.Context) workouts.ListResponse {
	req, err := http.NewRequestWithContext(
		ctx,
		"GET", fmt.Sprintf("%s/workouts", serverEndpoint),
		nil,
	)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var listResp workouts.ListResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &listResp))
	return listResp
}

func (s *IntegrationTestSuite) TestWorkouts() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now().In(time.Local)

	s.T().Run("add workouts, list sorted newest first", func(t *testing.T) {
		s.deleteAllWorkouts(context.Background())

		oldest := workouts.Workout{
			Exercise:  "Deadlift",
			Sets:      3,
			Reps:      5,
			Weight:    225,
			Notes:     "heavy day",
			CreatedAt: now.Add(-time.Hour),
		}
		middle := workouts.Workout{
			Exercise:  "Bench Press",
			Sets:      3,
			Reps:      8,
			Weight:    135,
			CreatedAt: now.Add(-time.Minute * 30),
		}
		newest := workouts.Workout{
			Exercise:  "Squat",
			Sets:      5,
			Reps:      5,
			Weight:    185,
			CreatedAt: now,
		}

		// deliberately insert out of chronological order
		addedMiddle := s.newWorkoutRequest(ctx, middle)
		addedNewest := s.newWorkoutRequest(ctx, newest)
		addedOldest := s.newWorkoutRequest(ctx, oldest)
		require.NotZero(t, addedOldest.ID)
		require.NotZero(t, addedMiddle.ID)
		require.NotZero(t, addedNewest.ID)

		assert.Equal(t, "Deadlift", addedOldest.Exercise)
		assert.Equal(t, "heavy day", addedOldest.Notes)
		assert.Equal(t,
			oldest.CreatedAt.Truncate(time.Second).In(time.UTC),
			addedOldest.CreatedAt.Truncate(time.Second).In(time.UTC),
		)

		listResp := s.listWorkoutsRequest(ctx)
		require.Len(t, listResp.Workouts, 3)
		assert.Equal(t, 3, listResp.Total)

		// sorted by created_at desc, regardless of insertion order
		assert.Equal(t, addedNewest.ID, listResp.Workouts[0].ID)
		assert.Equal(t, addedMiddle.ID, listResp.Workouts[1].ID)
		assert.Equal(t, addedOldest.ID, listResp.Workouts[2].ID)

		// the newly added workout appears first
		addedNow := s.newWorkoutRequest(ctx, workouts.Workout{
			Exercise:  "Overhead Press",
			Sets:      3,
			Reps:      10,
			Weight:    95,
			CreatedAt: now.Add(time.Minute),
		})
		listResp = s.listWorkoutsRequest(ctx)
		require.Len(t, listResp.Workouts, 4)
		assert.Equal(t, addedNow.ID, listResp.Workouts[0].ID)
	})

	s.T().Run("get and delete workout", func(t *testing.T) {
		s.deleteAllWorkouts(context.Background())

		added := s.newWorkoutRequest(ctx, workouts.Workout{
			Exercise:  "Barbell Row",
			Sets:      4,
			Reps:      8,
			Weight:    115,
			CreatedAt: now,
		})

		gotten, statusCode := s.getWorkoutRequest(ctx, added.ID)
		require.Equal(t, http.StatusOK, statusCode)
		assert.Equal(t, added.ID, gotten.ID)
		assert.Equal(t, "Barbell Row", gotten.Exercise)

		deleteResp, statusCode := s.deleteWorkoutRequest(ctx, added.ID)
		require.Equal(t, http.StatusOK, statusCode)
		assert.Equal(t, added.ID, deleteResp.DeletedID)

		_, statusCode = s.getWorkoutRequest(ctx, added.ID)
		assert.Equal(t, http.StatusNotFound, statusCode)
		_, statusCode = s.deleteWorkoutRequest(ctx, added.ID)
		assert.Equal(t, http.StatusNotFound, statusCode)

		assert.Equal(t, 0, s.countWorkouts(context.Background()))
	})

	s.T().Run("batch insert", func(t *testing.T) {
		s.deleteAllWorkouts(context.Background())

		addedWorkouts := s.newWorkoutsBatchRequest(ctx, []workouts.Workout{
			{
				Exercise:  "Pull Up",
				Sets:      3,
				Reps:      10,
				Weight:    0,
				CreatedAt: now.Add(-time.Minute * 2),
			},
			{
				Exercise:  "Dip",
				Sets:      3,
				Reps:      12,
				Weight:    25,
				CreatedAt: now.Add(-time.Minute),
			},
		})
		require.Len(t, addedWorkouts, 2)
		assert.NotZero(t, addedWorkouts[0].ID)
		assert.NotZero(t, addedWorkouts[1].ID)
		assert.NotEqual(t, addedWorkouts[0].ID, addedWorkouts[1].ID)

		listResp := s.listWorkoutsRequest(ctx)
		require.Len(t, listResp.Workouts, 2)
		assert.Equal(t, "Dip", listResp.Workouts[0].Exercise)
		assert.Equal(t, "Pull Up", listResp.Workouts[1].Exercise)
	})

	s.T().Run("batch insert is atomic, failure rolls everything back", func(t *testing.T) {
		s.deleteAllWorkouts(context.Background())
		workoutsRepo := workouts.NewRepo(s.dbPool)

		// the second workout overflows the integer sets column, so
		// the whole batch must be rolled back
		added, err := workoutsRepo.AddBatch(ctx, []workouts.Workout{
			{
				Exercise:  "Front Squat",
				Sets:      3,
				Reps:      8,
				Weight:    155,
				CreatedAt: now,
			},
			{
				Exercise:  "Lunge",
				Sets:      math.MaxInt32 + 1,
				Reps:      10,
				Weight:    40,
				CreatedAt: now,
			},
		})
		require.Error(t, err)
		assert.Nil(t, added)

		assert.Equal(t, 0, s.countWorkouts(context.Background()))
	})
}
