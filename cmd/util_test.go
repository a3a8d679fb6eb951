package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagoodman/go-partybus"

	"github.com/wisesaying/wisesaying/internal/bus"
	"github.com/wisesaying/wisesaying/wisesaying/event"
)

func TestStartWorker(t *testing.T) {
	test := func(t *testing.T) {
		testBus := partybus.NewBus()
		subscription := testBus.Subscribe()
		t.Cleanup(testBus.Close)
		bus.SetPublisher(testBus)
		t.Cleanup(func() {
			bus.SetPublisher(nil)
		})

		errs := startWorker(func() (string, error) {
			return "the report", nil
		})

		e := <-subscription.Events()
		assert.Equal(t, event.CommandFinished, e.Type)
		assert.Equal(t, "the report", e.Value)

		_, isOpen := <-errs
		assert.False(t, isOpen, "no error expected from a successful worker")
	}

	testWithTimeout(t, 5*time.Second, test)
}

func TestStartWorker_Error(t *testing.T) {
	test := func(t *testing.T) {
		workerErr := errors.New("store is gone")

		errs := startWorker(func() (string, error) {
			return "", workerErr
		})

		err, isOpen := <-errs
		require.True(t, isOpen)
		assert.ErrorIs(t, err, workerErr)

		_, isOpen = <-errs
		assert.False(t, isOpen)
	}

	testWithTimeout(t, 5*time.Second, test)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}
