package chat

import (
	"regexp"
	"strconv"
)

// Suggestion is a structured exercise suggestion extracted from coach
// response text. Weight keeps only the integer part of the stated value.
type Suggestion struct {
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps"`
	Weight   int    `json:"weight"`
}

var (
	boldSpanRegex = regexp.MustCompile(`\*\*(.+?)\*\*`)
	setsRegex     = regexp.MustCompile(`(?i)sets?\D*(\d+)`)
	repsRegex     = regexp.MustCompile(`(?i)reps?\D*(\d+)`)
	weightRegex   = regexp.MustCompile(`(?i)weight\D*(\d+)`)
)

// ExtractSuggestions scans coach response text for suggestion blocks: a
// bold exercise name followed by Sets, Reps and Weight details before the
// next bold span. Blocks missing any of the three details are dropped.
// Results keep the order of appearance in the text.
func ExtractSuggestions(text string) []Suggestion {
	spans := boldSpanRegex.FindAllStringSubmatchIndex(text, -1)
	if len(spans) == 0 {
		return nil
	}

	var suggestions []Suggestion
	for i, span := range spans {
		exercise := text[span[2]:span[3]]

		// detail blob runs until the next bold span or end of text
		detailFrom := span[1]
		detailTo := len(text)
		if i+1 < len(spans) {
			detailTo = spans[i+1][0]
		}
		details := text[detailFrom:detailTo]

		sets, ok := firstInt(setsRegex, details)
		if !ok {
			continue
		}
		reps, ok := firstInt(repsRegex, details)
		if !ok {
			continue
		}
		weight, ok := firstInt(weightRegex, details)
		if !ok {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Exercise: exercise,
			Sets:     sets,
			Reps:     reps,
			Weight:   weight,
		})
	}

	return suggestions
}

func firstInt(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
