package say

import (
	"fmt"
	"sort"
	"strings"
)

// Say is a single stored quote.
type Say struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Draft is the user supplied portion of a Say, used for creation and updates.
type Draft struct {
	Author  string
	Content string
}

// New assigns the given id to the draft.
func New(id int, d Draft) Say {
	return Say{
		ID:      id,
		Author:  d.Author,
		Content: d.Content,
	}
}

func (s Say) String() string {
	return fmt.Sprintf("%d / %s / %s", s.ID, s.Author, s.Content)
}

// Trimmed returns a copy of the draft with surrounding whitespace removed.
func (d Draft) Trimmed() Draft {
	return Draft{
		Author:  strings.TrimSpace(d.Author),
		Content: strings.TrimSpace(d.Content),
	}
}

// SortNewestFirst orders sayings by descending id (in place).
func SortNewestFirst(sayings []Say) {
	sort.SliceStable(sayings, func(i, j int) bool {
		return sayings[i].ID > sayings[j].ID
	})
}
