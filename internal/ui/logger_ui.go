package ui

import (
	"io"

	"github.com/wagoodman/go-partybus"

	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/wisesaying/event"
)

type loggerUI struct {
	unsubscribe  func() error
	reportOutput io.Writer
}

// NewLoggerUI writes all events to the common application logger and writes the final report to the given writer.
func NewLoggerUI(reportWriter io.Writer) UI {
	return &loggerUI{
		reportOutput: reportWriter,
	}
}

func (l *loggerUI) Setup(unsubscribe func() error) error {
	l.unsubscribe = unsubscribe
	return nil
}

func (l loggerUI) Handle(e partybus.Event) error {
	switch e.Type {
	case event.SayCreated, event.SayUpdated:
		if err := handleSayChanged(e); err != nil {
			log.Warnf("unable to show %s event: %+v", e.Type, err)
		}
	case event.SayDeleted:
		if err := handleSayDeleted(e); err != nil {
			log.Warnf("unable to show %s event: %+v", e.Type, err)
		}
	case event.StoreBuilt:
		if err := handleStoreBuilt(e); err != nil {
			log.Warnf("unable to show %s event: %+v", e.Type, err)
		}
	case event.CommandFinished:
		if err := handleCommandFinished(e, l.reportOutput); err != nil {
			log.Warnf("unable to show command finished event: %+v", err)
		}
		// this is the last expected event, stop listening to events
		return l.unsubscribe()
	default:
		log.Tracef("ignoring event: %s", e.Type)
	}
	return nil
}

func (l loggerUI) Teardown(_ bool) error {
	return nil
}
