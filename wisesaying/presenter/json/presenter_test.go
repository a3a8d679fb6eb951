package json

import (
	"bytes"
	"flag"
	"testing"

	"github.com/anchore/go-testutils"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisesaying/wisesaying/wisesaying/say"
)

var update = flag.Bool("update", false, "update the *.golden files for json presenters")

func TestPresenter_Present(t *testing.T) {
	page := say.Page{
		Content: []say.Say{
			{ID: 2, Author: "작자미상", Content: "<현재>를 사랑하라."},
			{ID: 1, Author: "작자미상", Content: "과거에 집착하지 마라."},
		},
		PageNo:     1,
		PageSize:   5,
		TotalCount: 2,
	}

	var buffer bytes.Buffer
	require.NoError(t, NewPresenter(page).Present(&buffer))
	actual := buffer.Bytes()

	if *update {
		testutils.UpdateGoldenFileContents(t, actual)
	}

	expected := testutils.GetGoldenFileContents(t)

	if !bytes.Equal(expected, actual) {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(expected), string(actual), true)
		t.Errorf("mismatched output:\n%s", dmp.DiffPrettyText(diffs))
	}
}

func TestPresenter_EmptyPage(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, NewPresenter(say.Page{PageNo: 1, PageSize: 5}).Present(&buffer))

	assert.Contains(t, buffer.String(), `"sayings": []`)
	assert.Contains(t, buffer.String(), `"totalPages": 0`)
}
