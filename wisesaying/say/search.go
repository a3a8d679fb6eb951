package say

import (
	"strings"

	"github.com/scylladb/go-set/strset"
)

// KeywordType selects which fields a keyword search applies to.
type KeywordType string

const (
	AllKeywordType     KeywordType = "all"
	AuthorKeywordType  KeywordType = "author"
	ContentKeywordType KeywordType = "content"
)

var keywordTypes = strset.New(string(AllKeywordType), string(AuthorKeywordType), string(ContentKeywordType))

// KeywordTypes lists all recognized keyword types.
var KeywordTypes = []KeywordType{AllKeywordType, AuthorKeywordType, ContentKeywordType}

// ParseKeywordType maps the user value onto a KeywordType. Anything unrecognized searches all fields.
func ParseKeywordType(value string) KeywordType {
	value = strings.ToLower(strings.TrimSpace(value))
	if keywordTypes.Has(value) {
		return KeywordType(value)
	}
	return AllKeywordType
}

// SearchCondition holds "contains" filters. When both fields are set a saying matches if either matches.
type SearchCondition struct {
	AuthorContains  string
	ContentContains string
}

// NewSearchCondition builds the condition for a keyword search over the given field(s). A blank keyword matches everything.
func NewSearchCondition(keywordType KeywordType, keyword string) SearchCondition {
	if strings.TrimSpace(keyword) == "" {
		return SearchCondition{}
	}

	switch keywordType {
	case AuthorKeywordType:
		return SearchCondition{AuthorContains: keyword}
	case ContentKeywordType:
		return SearchCondition{ContentContains: keyword}
	default:
		return SearchCondition{AuthorContains: keyword, ContentContains: keyword}
	}
}

func (c SearchCondition) HasAuthorCondition() bool {
	return strings.TrimSpace(c.AuthorContains) != ""
}

func (c SearchCondition) HasContentCondition() bool {
	return strings.TrimSpace(c.ContentContains) != ""
}

// IsEmpty reports whether the condition filters nothing.
func (c SearchCondition) IsEmpty() bool {
	return !c.HasAuthorCondition() && !c.HasContentCondition()
}

// Matches applies the condition to a single saying.
func (c SearchCondition) Matches(s Say) bool {
	switch {
	case c.HasAuthorCondition() && c.HasContentCondition():
		return strings.Contains(s.Author, c.AuthorContains) || strings.Contains(s.Content, c.ContentContains)
	case c.HasAuthorCondition():
		return strings.Contains(s.Author, c.AuthorContains)
	case c.HasContentCondition():
		return strings.Contains(s.Content, c.ContentContains)
	}
	return true
}

// Filter returns the sayings matching the condition, preserving order.
func (c SearchCondition) Filter(sayings []Say) []Say {
	if c.IsEmpty() {
		return sayings
	}
	var matched []Say
	for _, s := range sayings {
		if c.Matches(s) {
			matched = append(matched, s)
		}
	}
	return matched
}
