/*
Package event provides event types for all events that the wisesaying library published onto the event bus.
*/
package event

import "github.com/wagoodman/go-partybus"

const (
	SayCreated partybus.EventType = "wisesaying-say-created"
	SayUpdated partybus.EventType = "wisesaying-say-updated"
	SayDeleted partybus.EventType = "wisesaying-say-deleted"
	StoreBuilt partybus.EventType = "wisesaying-store-built"

	// CommandFinished carries the final report of a command; it is the last event a command publishes.
	CommandFinished partybus.EventType = "wisesaying-command-finished"
)
