package core

import (
	"html/template"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict(t *testing.T) {
	m, err := dict("Action", "/x", "WithReason", true)
	require.NoError(t, err)
	assert.Equal(t, "/x", m["Action"])
	assert.Equal(t, true, m["WithReason"])

	_, err = dict("odd")
	require.Error(t, err)
	_, err = dict(1, 2)
	require.Error(t, err)
}

func TestSeqAndNoticeClass(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, seq(3))
	assert.Nil(t, seq(0))
	assert.Equal(t, "notice-error", noticeClass("error"))
	assert.Equal(t, "notice-info", noticeClass("whatever"))
}

func TestRenderSection(t *testing.T) {
	var tmpl *template.Template
	funcs := Funcs(Deps{
		Template:           &tmpl,
		ContentTemplateFor: func(page string) string { return page + "-content" },
		Now:                func() time.Time { return time.Unix(0, 0) },
	})
	tmpl = template.Must(template.New("root").Funcs(funcs).Parse(
		`{{define "faq-content"}}<p>{{.}}</p>{{end}}{{define "page"}}{{renderSection "faq" .}}{{end}}`))

	var sb stringsBuilder
	require.NoError(t, tmpl.ExecuteTemplate(&sb, "page", "<b>"))
	assert.Equal(t, "<p>&lt;b&gt;</p>", sb.String())
}

type stringsBuilder struct{ b []byte }

func (s *stringsBuilder) Write(p []byte) (int, error) { s.b = append(s.b, p...); return len(p), nil }
func (s *stringsBuilder) String() string              { return string(s.b) }

func TestFormHelpers(t *testing.T) {
	data := map[string]any{
		"FormKey": "faq:7",
		"Form":    map[string]string{"question": "Open Sundays?"},
		"Errors":  map[string]string{"answer": "Answer is required"},
	}

	assert.True(t, formOpen(data, "faq:7"))
	assert.False(t, formOpen(data, "faq:8"))
	assert.False(t, formOpen(map[string]any{}, ""))

	assert.Equal(t, "Open Sundays?", formValue(data, "faq:7", "question", "old"))
	assert.Equal(t, "old", formValue(data, "faq:8", "question", "old"))
	assert.Equal(t, "", formValue(data, "faq:8", "question", nil))
	assert.Equal(t, "12.5", formValue(data, "faq:8", "price", 12.5))

	assert.Equal(t, "Answer is required", fieldError(data, "faq:7", "answer"))
	assert.Empty(t, fieldError(data, "faq:8", "answer"))
}
