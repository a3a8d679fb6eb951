package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagoodman/go-partybus"

	"github.com/wisesaying/wisesaying/wisesaying/event"
	"github.com/wisesaying/wisesaying/wisesaying/say"
)

func TestLoggerUI_Handle(t *testing.T) {
	var report bytes.Buffer
	var unsubscribed int

	ux := NewLoggerUI(&report)
	require.NoError(t, ux.Setup(func() error {
		unsubscribed++
		return nil
	}))

	for _, e := range []partybus.Event{
		{Type: event.SayCreated, Value: say.Say{ID: 1, Author: "a", Content: "b"}},
		{Type: event.SayUpdated, Value: "not a saying"},
		{Type: event.SayDeleted, Value: 1},
		{Type: event.StoreBuilt, Source: "/db/data.json"},
		{Type: "some-other-event"},
	} {
		assert.NoError(t, ux.Handle(e))
	}
	assert.Equal(t, 0, unsubscribed)
	assert.Empty(t, report.String())

	assert.NoError(t, ux.Handle(partybus.Event{Type: event.CommandFinished, Value: "the report\n"}))
	assert.Equal(t, 1, unsubscribed)
	assert.Equal(t, "the report\n", report.String())

	assert.NoError(t, ux.Teardown(false))
}

func TestLoggerUI_BadFinalEventStillUnsubscribes(t *testing.T) {
	var report bytes.Buffer
	var unsubscribed bool

	ux := NewLoggerUI(&report)
	require.NoError(t, ux.Setup(func() error {
		unsubscribed = true
		return nil
	}))

	assert.NoError(t, ux.Handle(partybus.Event{Type: event.CommandFinished, Value: 42}))
	assert.True(t, unsubscribed)
	assert.Empty(t, report.String())
}
