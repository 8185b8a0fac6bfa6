package workouts

import "time"

// Workout is one logged exercise performance. Immutable once created,
// except for deletion.
type Workout struct {
	ID        int       `json:"id"`
	Exercise  string    `json:"exercise"`
	Sets      int       `json:"sets"`
	Reps      int       `json:"reps"`
	Weight    float64   `json:"weight"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
