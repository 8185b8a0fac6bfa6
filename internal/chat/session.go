package chat

import (
	"context"

	"github.com/2beens/fitlog/internal/workouts"
)

//go:generate mockgen -source=session.go -destination=session_mocks_test.go -package=chat_test

const (
	// assistantApology replaces a failed assistant turn, partial text
	// received before the failure is discarded.
	assistantApology = "Sorry, I ran into a problem answering that. Please try again."

	quickAddNote = "Added from AI suggestion"
)

type sessionStreamer interface {
	StreamMessage(ctx context.Context, message string, history []Message, onDelta func(string)) (string, error)
}

type workoutCreator interface {
	CreateWorkout(ctx context.Context, workout workouts.Workout) (workouts.Workout, error)
}

// Session holds an ordered conversation with the coach and supports
// one-click logging of extracted suggestions.
type Session struct {
	streamer sessionStreamer
	creator  workoutCreator
	turns    []Turn
}

func NewSession(streamer sessionStreamer, creator workoutCreator) *Session {
	return &Session{
		streamer: streamer,
		creator:  creator,
	}
}

// Turns returns the conversation so far, oldest first.
func (s *Session) Turns() []Turn {
	return s.turns
}

// Send appends the user message and a pending assistant turn, then fills
// the assistant turn chunk by chunk as the response streams in. onDelta is
// invoked per chunk for live display. On failure the assistant turn is
// overwritten with a fixed apology and the error is returned.
func (s *Session) Send(ctx context.Context, content string, onDelta func(string)) error {
	history := make([]Message, 0, len(s.turns))
	for _, t := range s.turns {
		history = append(history, Message{Role: t.Role, Content: t.Content})
	}

	s.turns = append(s.turns, NewUserTurn(content))
	s.turns = append(s.turns, NewAssistantTurn())
	assistant := &s.turns[len(s.turns)-1]

	_, err := s.streamer.StreamMessage(ctx, content, history, func(delta string) {
		assistant.Content += delta
		if onDelta != nil {
			onDelta(delta)
		}
	})
	if err != nil {
		assistant.Content = assistantApology
		return err
	}

	return nil
}

// LastAssistantText returns the content of the newest assistant turn, or
// empty string when none exists yet.
func (s *Session) LastAssistantText() string {
	for i := len(s.turns) - 1; i >= 0; i-- {
		if s.turns[i].Role == RoleAssistant {
			return s.turns[i].Content
		}
	}
	return ""
}

// QuickAdd logs a suggested exercise as a workout, marked as coming from
// the coach.
func (s *Session) QuickAdd(ctx context.Context, suggestion Suggestion) (workouts.Workout, error) {
	return s.creator.CreateWorkout(ctx, workouts.Workout{
		Exercise: suggestion.Exercise,
		Sets:     suggestion.Sets,
		Reps:     suggestion.Reps,
		Weight:   float64(suggestion.Weight),
		Notes:    quickAddNote,
	})
}
