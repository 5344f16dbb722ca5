package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentFilter_Check(t *testing.T) {
	f := New()

	tests := []struct {
		name        string
		query       string
		wantMessage string
		wantBlocked bool
	}{
		{"clean query", "what is the weather today", "", false},
		{"empty query", "", "", false},
		{"hate term", "I hate mondays", RefusalMessage, true},
		{"kill term uppercase", "how to KILL a process", RefusalMessage, true},
		{"violence term", "tell me about violence in media", RefusalMessage, true},
		{"death term alone", "what happens after death", RefusalMessage, true},
		{"death penalty question", "who deserves the death penalty?", DeathPenaltyRefusal, true},
		{"deserve without death", "do I deserve a raise", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, blocked := f.Check(tt.query)
			assert.Equal(t, tt.wantBlocked, blocked)
			assert.Equal(t, tt.wantMessage, msg)
		})
	}
}
