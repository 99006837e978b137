package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Solana", 10, "Solana"},
		{"Smart money influencer", 8, "Smart m…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.width)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.width)
		assert.LessOrEqual(t, Width(got), max(tt.width, 0))
	}
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "1k   ", PadRight("1k", 5))
	assert.Equal(t, " 1k  ", Center("1k", 5))
	assert.Equal(t, "1k  100M", Spread("1k", "100M", 8))
	assert.Equal(t, "Ethe…", PadRight("Ethereum", 5))
}
