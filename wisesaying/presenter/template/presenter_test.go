package template

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisesaying/wisesaying/wisesaying/say"
)

func writeTemplate(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sayings.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestPresenter_Present(t *testing.T) {
	page := say.Page{
		Content: []say.Say{
			{ID: 2, Author: "작자미상", Content: "현재를 사랑하라."},
			{ID: 1, Author: "공자", Content: "배우고 때때로 익히면"},
		},
		PageNo:     1,
		PageSize:   5,
		TotalCount: 2,
	}

	path := writeTemplate(t, `{{- range $i, $s := .Sayings }}{{ $s.ID }}:{{ upper $s.Author }}{{ if ne $i (getLastIndex $.Sayings) }},{{ end }}{{ end }} ({{ .PageNo }}/{{ .TotalPages }})`)

	var buffer bytes.Buffer
	require.NoError(t, NewPresenter(page, path).Present(&buffer))

	assert.Equal(t, "2:작자미상,1:공자 (1/1)", buffer.String())
}

func TestPresenter_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "no template",
			path: func(t *testing.T) string { return "" },
		},
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.tmpl") },
		},
		{
			name: "bad template",
			path: func(t *testing.T) string { return writeTemplate(t, "{{ .Sayings ") },
		},
		{
			name: "bad field",
			path: func(t *testing.T) string { return writeTemplate(t, "{{ .Nope }}") },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buffer bytes.Buffer
			assert.Error(t, NewPresenter(say.Page{}, test.path(t)).Present(&buffer))
		})
	}
}

func TestFuncMap_GetLastIndex(t *testing.T) {
	getLastIndex := FuncMap["getLastIndex"].(func(interface{}) int)

	assert.Equal(t, 2, getLastIndex([]int{1, 2, 3}))
	assert.Equal(t, -1, getLastIndex([]string{}))
	assert.Equal(t, 0, getLastIndex("not a slice"))
}
