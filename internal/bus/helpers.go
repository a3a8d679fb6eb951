package bus

import (
	"github.com/wagoodman/go-partybus"

	"github.com/wisesaying/wisesaying/wisesaying/event"
)

// Report publishes the final report of a command.
func Report(report string) {
	Publish(partybus.Event{
		Type:  event.CommandFinished,
		Value: report,
	})
}
