package wisesaying

import (
	"github.com/wagoodman/go-partybus"

	"github.com/wisesaying/wisesaying/internal/bus"
	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/wisesaying/logger"
)

func SetLogger(logger logger.Logger) {
	log.Log = logger
}

func SetBus(b *partybus.Bus) {
	bus.SetPublisher(b)
}
