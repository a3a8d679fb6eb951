package file

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Counter persists a monotonically increasing integer in a single text file (e.g. "lastId.txt").
type Counter struct {
	fs   afero.Fs
	path string
}

func NewCounter(fs afero.Fs, path string) *Counter {
	return &Counter{fs: fs, path: path}
}

// Ensure creates the counter file with a value of 0 when it does not exist yet.
func (c *Counter) Ensure() error {
	if Exists(c.fs, c.path) {
		return nil
	}
	return c.Set(0)
}

// Current returns the last stored value. A missing or empty file reads as 0.
func (c *Counter) Current() (int, error) {
	contents, err := afero.ReadFile(c.fs, c.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("unable to read counter=%q: %w", c.path, err)
	}

	txt := strings.TrimSpace(string(contents))
	if txt == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(txt)
	if err != nil {
		return 0, fmt.Errorf("counter=%q holds a non-integer value %q: %w", c.path, txt, err)
	}
	return value, nil
}

// Next increments the stored value and returns the new value.
func (c *Counter) Next() (int, error) {
	last, err := c.Current()
	if err != nil {
		return 0, err
	}
	next := last + 1
	if err := c.Set(next); err != nil {
		return 0, err
	}
	return next, nil
}

// Set overwrites the stored value.
func (c *Counter) Set(value int) error {
	if err := afero.WriteFile(c.fs, c.path, []byte(strconv.Itoa(value)), 0644); err != nil {
		return fmt.Errorf("unable to write counter=%q: %w", c.path, err)
	}
	return nil
}
