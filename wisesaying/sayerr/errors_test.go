package sayerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("unable to update: %w", NotFoundError{ID: 7})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "unable to update: 7번 명언은 존재하지 않습니다.", err.Error())

	var nf NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, 7, nf.ID)
}

func TestIsExpected(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "blank author", err: ErrBlankAuthor, expected: true},
		{name: "wrapped blank content", err: fmt.Errorf("create: %w", ErrBlankContent), expected: true},
		{name: "not found", err: NotFoundError{ID: 1}, expected: false},
		{name: "nil", err: nil, expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, IsExpected(test.err))
		})
	}
}
