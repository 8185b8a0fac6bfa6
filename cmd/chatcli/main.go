package main

// Terminal client for the fitlog coach chat. Talks to a running fitlog
// backend, streams coach responses to stdout and supports one-command
// logging of suggested exercises.

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/2beens/fitlog/internal/chat"
)

func main() {
	serverURL := "http://localhost:9000"
	if len(os.Args) > 1 {
		serverURL = os.Args[1]
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-chOsInterrupt
		fmt.Println("\nbye!")
		cancel()
		os.Exit(0)
	}()

	api := newApiClient(serverURL, &http.Client{
		Timeout: 5 * time.Minute,
	})
	session := chat.NewSession(api, api)

	fmt.Printf("fitlog coach @ %s\n", serverURL)
	fmt.Println("type a message and press enter. commands: /suggestions, /add <n>, /quit")

	var lastSuggestions []chat.Suggestion
	stdinReader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("\n> ")
		line, err := stdinReader.ReadString('\n')
		if err != nil {
			fmt.Printf("read input: %s\n", err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case line == "/quit" || line == "/q":
			fmt.Println("bye!")
			return

		case line == "/suggestions" || line == "/s":
			lastSuggestions = showSuggestions(ctx, api, session)

		case strings.HasPrefix(line, "/add"):
			quickAdd(ctx, session, lastSuggestions, strings.TrimSpace(strings.TrimPrefix(line, "/add")))

		default:
			err := session.Send(ctx, line, func(delta string) {
				fmt.Print(delta)
			})
			fmt.Println()
			if err != nil {
				fmt.Printf("chat error: %s\n", err)
			}
			lastSuggestions = nil
		}
	}
}

func showSuggestions(ctx context.Context, api *apiClient, session *chat.Session) []chat.Suggestion {
	lastResponse := session.LastAssistantText()
	if lastResponse == "" {
		fmt.Println("nothing to extract from, chat with the coach first")
		return nil
	}

	suggestions, err := api.ExtractSuggestions(ctx, lastResponse)
	if err != nil {
		fmt.Printf("extract suggestions: %s\n", err)
		return nil
	}
	if len(suggestions) == 0 {
		fmt.Println("no exercise suggestions found in the last response")
		return nil
	}

	for i, s := range suggestions {
		fmt.Printf("  [%d] %s: %dx%d @ %d lbs\n", i+1, s.Exercise, s.Sets, s.Reps, s.Weight)
	}
	fmt.Println("log one with: /add <n>")

	return suggestions
}

func quickAdd(ctx context.Context, session *chat.Session, suggestions []chat.Suggestion, arg string) {
	if len(suggestions) == 0 {
		fmt.Println("no suggestions to add, run /suggestions first")
		return
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(suggestions) {
		fmt.Printf("usage: /add <1..%d>\n", len(suggestions))
		return
	}

	added, err := session.QuickAdd(ctx, suggestions[n-1])
	if err != nil {
		fmt.Printf("add workout: %s\n", err)
		return
	}

	fmt.Printf("logged %s (id %d)\n", added.Exercise, added.ID)
}
