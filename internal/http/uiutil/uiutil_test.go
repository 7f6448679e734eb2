package uiutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyRelativeTime(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{ago: -time.Minute, want: "just now"},
		{ago: 30 * time.Second, want: "just now"},
		{ago: time.Minute, want: "1 minute ago"},
		{ago: 5 * time.Minute, want: "5 minutes ago"},
		{ago: 3 * time.Hour, want: "3 hours ago"},
		{ago: 25 * time.Hour, want: "1 day ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FriendlyRelativeTime(now.Add(-tt.ago), now), tt.ago.String())
	}

	old := now.Add(-30 * 24 * time.Hour)
	assert.Equal(t, FormatFriendlyDate(old), FriendlyRelativeTime(old, now))
	assert.Empty(t, FriendlyRelativeTime(time.Time{}, now))
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "Loved th…", TruncateWithEllipsis("Loved the new color!", 9))
	assert.Equal(t, "…", TruncateWithEllipsis("abc", 1))
	assert.Equal(t, "abc", TruncateWithEllipsis("abc", 0))
}
