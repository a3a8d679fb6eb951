package cmd

import (
	"errors"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/wagoodman/go-partybus"

	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/internal/ui"
)

// eventLoop drives a command to completion. It hands bus events to the UI until the command's report has been shown,
// collects the worker's error (if any) and gives up on both when the process is interrupted.
func eventLoop(workerErrs <-chan error, signals <-chan os.Signal, subscription *partybus.Subscription, cleanupFn func(), ux ui.UI) error {
	defer cleanupFn()

	ux, err := setupUI(subscription.Unsubscribe, ux)
	if err != nil {
		return err
	}

	var (
		retErr      error
		interrupted bool
		events      = subscription.Events()
	)

	for workerErrs != nil || events != nil {
		select {
		case err, isOpen := <-workerErrs:
			if !isOpen {
				workerErrs = nil
				continue
			}
			if err != nil {
				retErr = multierror.Append(retErr, stopListening(err, subscription))
			}

		case e, isOpen := <-events:
			if !isOpen {
				events = nil
				continue
			}
			if err := ux.Handle(e); err != nil {
				if errors.Is(err, partybus.ErrUnsubscribe) {
					log.Warnf("unable to unsubscribe from the event bus")
					events = nil
					continue
				}
				retErr = multierror.Append(retErr, err)
			}

		case sig := <-signals:
			// the console worker may still be blocked on input; it is abandoned with the process
			log.Infof("received %s, abandoning the command", sig)
			interrupted = true
			workerErrs, events = nil, nil
		}
	}

	if err := ux.Teardown(interrupted); err != nil {
		retErr = multierror.Append(retErr, err)
	}

	return retErr
}

// stopListening unsubscribes after a failed worker; no report event will follow the failure.
func stopListening(workerErr error, subscription *partybus.Subscription) error {
	log.Debugf("command failed: %+v", workerErr)
	if err := subscription.Unsubscribe(); err != nil {
		return multierror.Append(workerErr, err)
	}
	return workerErr
}

// setupUI prepares the given UI, falling back to the logger UI writing to stdout if setup fails.
func setupUI(unsubscribe func() error, ux ui.UI) (ui.UI, error) {
	if err := ux.Setup(unsubscribe); err != nil {
		fallback := ui.NewLoggerUI(os.Stdout)
		if err := fallback.Setup(unsubscribe); err != nil {
			return fallback, err
		}
		log.Errorf("unable to setup given UI, falling back to logger: %+v", err)
		return fallback, nil
	}
	return ux, nil
}
