package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/wisesaying/wisesaying/internal/bus"
	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/wisesaying"
)

func stderrPrintLnf(message string, args ...interface{}) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	_, err := fmt.Fprintf(os.Stderr, message, args...)
	return err
}

// openService opens the configured store; the returned cleanup closes it.
func openService() (*wisesaying.Service, func(), error) {
	s, err := wisesaying.OpenStore(appConfig.Store.ToStoreConfig())
	if err != nil {
		return nil, func() {}, err
	}
	log.Debugf("opened %s store", appConfig.Store.KindOpt)

	return wisesaying.NewService(s), func() {
		log.CloseAndLogError(s, string(appConfig.Store.KindOpt))
	}, nil
}

// startWorker runs the given job in the background. The job's report is published as the final event; a failed job
// reports its error on the returned channel instead.
func startWorker(job func() (string, error)) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		report, err := job()
		if err != nil {
			errs <- err
			return
		}

		bus.Report(report)
	}()
	return errs
}

// exitCode reports the error (if any) and maps it onto a process exit code.
func exitCode(err error) int {
	if err != nil {
		log.Errorf("%+v", err)
		_ = stderrPrintLnf("%s", err.Error())
		return 1
	}
	return 0
}

// startProfiling starts the profiler selected in the dev config; the returned func stops it.
func startProfiling() func() {
	switch {
	case appConfig.Dev.ProfileCPU:
		return profile.Start(profile.CPUProfile).Stop
	case appConfig.Dev.ProfileMem:
		return profile.Start(profile.MemProfile).Stop
	default:
		return func() {}
	}
}
