package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/workouts"
)

// noRecentWorkoutsNote is injected into the system prompt when the trailing
// window holds no workouts at all.
const noRecentWorkoutsNote = "The user has no logged workouts in the last two weeks."

const systemPromptTemplate = `You are a supportive personal fitness coach. You help the user plan workouts, track progress and stay motivated.

When you suggest a concrete exercise, format it as a block:

**Exercise Name**
Sets: <number>
Reps: <number>
Weight: <number> lbs

Always include Sets, Reps and Weight lines for every suggested exercise, in that order. Outside of these blocks never state a literal target weight, give qualitative guidance instead (e.g. "slightly heavier than last time").

Keep answers concise and practical. Ground advice in the user's recent training shown below.

Recent workouts (last 14 days):
%s`

// FormatWorkoutContext renders recent workouts as one line each, newest
// first, for embedding into the system prompt.
func FormatWorkoutContext(recent []workouts.Workout) string {
	if len(recent) == 0 {
		return noRecentWorkoutsNote
	}

	var sb strings.Builder
	for i, w := range recent {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fmt.Sprintf(
			"%s: %s - %dx%d @ %glbs",
			w.CreatedAt.Format("Monday "+time.DateOnly),
			w.Exercise, w.Sets, w.Reps, w.Weight,
		))
		if w.Notes != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", w.Notes))
		}
	}
	return sb.String()
}

// SystemPrompt builds the coaching system message with the given recent
// workouts embedded.
func SystemPrompt(recent []workouts.Workout) Message {
	return Message{
		Role:    RoleSystem,
		Content: fmt.Sprintf(systemPromptTemplate, FormatWorkoutContext(recent)),
	}
}
