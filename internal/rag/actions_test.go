package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickActions(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "no scenario",
			query: "what's the weather today",
			want:  nil,
		},
		{
			name:  "bleeding scenario",
			query: "I'm bleeding and need help",
			want: []string{
				"Apply direct pressure with clean cloth",
				"Elevate wound above heart if possible",
				"Do NOT remove embedded objects",
			},
		},
		{
			name:  "multiple scenarios concatenate in fixed order",
			query: "I'm trapped and bleeding",
			want: []string{
				"Stay calm, conserve energy",
				"Tap on pipes to signal rescuers",
				"Cover mouth to avoid dust",
				"Apply direct pressure with clean cloth",
				"Elevate wound above heart if possible",
				"Do NOT remove embedded objects",
			},
		},
		{
			name:  "earthquake scenario precedes others regardless of query order",
			query: "trapped after the earthquake",
			want: []string{
				"DROP, COVER, HOLD ON",
				"Stay where you are until shaking stops",
				"Stay calm, conserve energy",
				"Tap on pipes to signal rescuers",
				"Cover mouth to avoid dust",
			},
		},
		{
			name:  "multi-word keyword matches as substring",
			query: "there is more shaking coming",
			want: []string{
				"DROP, COVER, HOLD ON",
				"Stay where you are until shaking stops",
				"DROP, COVER, HOLD ON again",
				"Stay away from damaged buildings",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuickActions(tt.query))
		})
	}
}
