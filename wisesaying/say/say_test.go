package say

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
)

func TestSay_String(t *testing.T) {
	s := New(3, Draft{Author: "작자미상", Content: "과거에 집착하지 마라."})
	assert.Equal(t, "3 / 작자미상 / 과거에 집착하지 마라.", s.String())
}

func TestDraft_Trimmed(t *testing.T) {
	d := Draft{Author: "  이순신 ", Content: "\t나의 죽음을 알리지 말라\n"}
	assert.Equal(t, Draft{Author: "이순신", Content: "나의 죽음을 알리지 말라"}, d.Trimmed())
}

func TestSortNewestFirst(t *testing.T) {
	sayings := []Say{{ID: 2}, {ID: 10}, {ID: 1}, {ID: 5}}
	SortNewestFirst(sayings)

	for _, diff := range deep.Equal(sayings, []Say{{ID: 10}, {ID: 5}, {ID: 2}, {ID: 1}}) {
		t.Errorf("order difference: %s", diff)
	}
}
