package parsers

import (
	"fmt"

	"github.com/wagoodman/go-partybus"

	"github.com/wisesaying/wisesaying/wisesaying/event"
	"github.com/wisesaying/wisesaying/wisesaying/say"
)

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

// ParseSayChanged extracts the saying carried by a created or updated event.
func ParseSayChanged(e partybus.Event) (*say.Say, error) {
	if e.Type != event.SayCreated && e.Type != event.SayUpdated {
		return nil, newPayloadErr(event.SayCreated, "Type", e.Type)
	}

	s, ok := e.Value.(say.Say)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}
	return &s, nil
}

// ParseSayDeleted extracts the id of the deleted saying.
func ParseSayDeleted(e partybus.Event) (int, error) {
	if err := checkEventType(e.Type, event.SayDeleted); err != nil {
		return 0, err
	}

	id, ok := e.Value.(int)
	if !ok {
		return 0, newPayloadErr(e.Type, "Value", e.Value)
	}
	return id, nil
}

// ParseStoreBuilt extracts the location the store was built to.
func ParseStoreBuilt(e partybus.Event) (string, error) {
	if err := checkEventType(e.Type, event.StoreBuilt); err != nil {
		return "", err
	}

	location, ok := e.Source.(string)
	if !ok {
		return "", newPayloadErr(e.Type, "Source", e.Source)
	}
	return location, nil
}

// ParseCommandFinished extracts the report a command wants shown to the user.
func ParseCommandFinished(e partybus.Event) (*string, error) {
	if err := checkEventType(e.Type, event.CommandFinished); err != nil {
		return nil, err
	}

	result, ok := e.Value.(string)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}
	return &result, nil
}
