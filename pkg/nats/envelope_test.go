package nats

import (
	"testing"
	"time"

	"minddock/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeKeepsTypeAndTime(t *testing.T) {
	at := time.Date(2026, 2, 1, 8, 30, 0, 0, time.UTC)

	raw, err := encode(events.Activity("dailylog.created", "dailylog", "42", at))
	require.NoError(t, err)

	got, err := decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "dailylog.created", got.EventType())
	assert.True(t, at.Equal(got.Timestamp()))
	assert.Equal(t, "dailylog", got.Payload()["entity"])
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := decode([]byte("not json"))
	assert.Error(t, err)
}
