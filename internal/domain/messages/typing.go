package messages

import (
	"strings"
	"time"
)

// TypingWindow is how long the indicator stays up after the last keystroke.
const TypingWindow = 2 * time.Second

// TypingIndicator tracks the local "typing..." state for the compose box.
type TypingIndicator struct {
	deadline time.Time
}

// Keystroke records the current compose input at now. Non-empty input
// (re)starts the window; empty input clears the indicator immediately.
func (t *TypingIndicator) Keystroke(input string, now time.Time) {
	if strings.TrimSpace(input) == "" {
		t.deadline = time.Time{}
		return
	}
	t.deadline = now.Add(TypingWindow)
}

// Active reports whether the indicator is showing at now.
func (t *TypingIndicator) Active(now time.Time) bool {
	return !t.deadline.IsZero() && now.Before(t.deadline)
}

// Reset clears the indicator.
func (t *TypingIndicator) Reset() { t.deadline = time.Time{} }
