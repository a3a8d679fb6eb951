package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/wisesaying/wisesaying/wisesaying/say"
)

// AssertSayings compares expected and actual sayings (including order) using cmp.Diff.
func AssertSayings(t *testing.T, expected, actual []say.Say, opts ...cmp.Option) {
	t.Helper()

	if len(expected) == 0 && len(actual) == 0 {
		return
	}

	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Errorf("sayings mismatch (-want +got):\n%s", diff)
	}
}

// AssertIDs asserts the ids (and their order) of the given sayings.
func AssertIDs(t *testing.T, expected []int, actual []say.Say) {
	t.Helper()

	ids := make([]int, 0, len(actual))
	for _, s := range actual {
		ids = append(ids, s.ID)
	}
	if len(expected) == 0 {
		assert.Empty(t, ids)
		return
	}
	assert.Equal(t, expected, ids)
}
