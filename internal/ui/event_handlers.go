package ui

import (
	"fmt"
	"io"

	"github.com/wagoodman/go-partybus"

	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/wisesaying/event/parsers"
)

func handleSayChanged(e partybus.Event) error {
	s, err := parsers.ParseSayChanged(e)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", e.Type, err)
	}
	log.Debugf("%s: %s", e.Type, s)
	return nil
}

func handleSayDeleted(e partybus.Event) error {
	id, err := parsers.ParseSayDeleted(e)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", e.Type, err)
	}
	log.Debugf("%s: id=%d", e.Type, id)
	return nil
}

func handleStoreBuilt(e partybus.Event) error {
	location, err := parsers.ParseStoreBuilt(e)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", e.Type, err)
	}
	log.Infof("store built: %q", location)
	return nil
}

func handleCommandFinished(e partybus.Event, reportOutput io.Writer) error {
	// show the report to stdout
	result, err := parsers.ParseCommandFinished(e)
	if err != nil {
		return fmt.Errorf("bad CommandFinished event: %w", err)
	}

	if _, err := reportOutput.Write([]byte(*result)); err != nil {
		return fmt.Errorf("unable to show report: %w", err)
	}
	return nil
}
