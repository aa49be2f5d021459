package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EstimatedOneRepMax estimates a one-rep max using the Epley formula.
// Reps below 1 are treated as a single rep.
func EstimatedOneRepMax(weight float64, reps int) float64 {
	if reps < 1 {
		reps = 1
	}
	return weight * (1 + float64(reps)/30)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ParseMmSs parses "mm:ss" or "h:mm:ss" (a single token is taken as seconds).
// Anything unparsable, including negative parts, yields 0.
func ParseMmSs(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// FormatSecondsAsMmSs formats seconds as m:ss. Hours are folded into minutes.
func FormatSecondsAsMmSs(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	s := int64(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
