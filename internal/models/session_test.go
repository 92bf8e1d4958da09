package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionExpiry(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &InterviewSession{
		CreatedAt:       created,
		DurationMinutes: 45,
	}

	assert.Equal(t, created.Add(45*time.Minute), s.ExpiresAt())
	assert.False(t, s.Expired(created.Add(44*time.Minute)))
	assert.False(t, s.Expired(created.Add(45*time.Minute)))
	assert.True(t, s.Expired(created.Add(46*time.Minute)))
}
