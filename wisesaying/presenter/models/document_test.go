package models

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/wisesaying/wisesaying/wisesaying/say"
)

func TestNewDocument(t *testing.T) {
	tests := []struct {
		name     string
		page     say.Page
		expected Document
	}{
		{
			name: "empty page",
			page: say.Page{PageNo: 1, PageSize: 5},
			expected: Document{
				Sayings:  []say.Say{},
				PageNo:   1,
				PageSize: 5,
			},
		},
		{
			name: "partial last page",
			page: say.Page{
				Content:    []say.Say{{ID: 1, Author: "작자미상", Content: "현재를 사랑하라."}},
				PageNo:     3,
				PageSize:   5,
				TotalCount: 11,
			},
			expected: Document{
				Sayings:    []say.Say{{ID: 1, Author: "작자미상", Content: "현재를 사랑하라."}},
				PageNo:     3,
				PageSize:   5,
				TotalCount: 11,
				TotalPages: 3,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, d := range deep.Equal(test.expected, NewDocument(test.page)) {
				t.Errorf("diff: %+v", d)
			}
		})
	}
}
