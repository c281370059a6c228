package scoring

import (
	"fmt"
	"strings"

	"github.com/lueurxax/inkguard/internal/core/domain"
)

// WordsPerMinute is the assumed reading speed.
const WordsPerMinute = 200

// ReadingTime estimates how long text takes to read. Empty text reads in 0 minutes.
func ReadingTime(text string) domain.ReadingTime {
	words := len(strings.Fields(text))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute

	return domain.ReadingTime{
		Text:    fmt.Sprintf("%d min read", minutes),
		Minutes: minutes,
		Words:   words,
	}
}
