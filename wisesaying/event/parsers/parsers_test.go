package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagoodman/go-partybus"

	"github.com/wisesaying/wisesaying/wisesaying/event"
	"github.com/wisesaying/wisesaying/wisesaying/say"
)

func TestParseSayChanged(t *testing.T) {
	expected := say.Say{ID: 1, Author: "a", Content: "b"}

	for _, eventType := range []partybus.EventType{event.SayCreated, event.SayUpdated} {
		actual, err := ParseSayChanged(partybus.Event{Type: eventType, Value: expected})
		require.NoError(t, err)
		assert.Equal(t, expected, *actual)
	}

	_, err := ParseSayChanged(partybus.Event{Type: event.SayDeleted, Value: expected})
	assert.Error(t, err)

	_, err = ParseSayChanged(partybus.Event{Type: event.SayCreated, Value: "nope"})
	var payloadErr *ErrBadPayload
	require.ErrorAs(t, err, &payloadErr)
	assert.Equal(t, "Value", payloadErr.Field)
}

func TestParseSayDeleted(t *testing.T) {
	id, err := ParseSayDeleted(partybus.Event{Type: event.SayDeleted, Value: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	_, err = ParseSayDeleted(partybus.Event{Type: event.StoreBuilt, Value: 4})
	assert.Error(t, err)
}

func TestParseStoreBuilt(t *testing.T) {
	location, err := ParseStoreBuilt(partybus.Event{Type: event.StoreBuilt, Source: "/db/data.json"})
	require.NoError(t, err)
	assert.Equal(t, "/db/data.json", location)

	_, err = ParseStoreBuilt(partybus.Event{Type: event.StoreBuilt})
	assert.Error(t, err)
}

func TestParseCommandFinished(t *testing.T) {
	report, err := ParseCommandFinished(partybus.Event{Type: event.CommandFinished, Value: "done\n"})
	require.NoError(t, err)
	assert.Equal(t, "done\n", *report)

	_, err = ParseCommandFinished(partybus.Event{Type: event.CommandFinished, Value: 3})
	assert.Error(t, err)
}
