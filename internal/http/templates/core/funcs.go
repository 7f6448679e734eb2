package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/target/salonbook-ui/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Funcs returns a template.FuncMap containing helpers shared by every template.
func Funcs(deps Deps) template.FuncMap {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"friendlyTime": func(t time.Time) string { return uiutil.FriendlyRelativeTime(t, now()) },
		"friendlyDate": uiutil.FormatFriendlyDate,
		"timeTag":      timeTag,
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"seq":          seq,
		"truncateText": uiutil.TruncateWithEllipsis,
		"noticeClass":  noticeClass,
		"rating":       func(f float64) string { return fmt.Sprintf("%.1f", f) },
		"dict":         dict,
		"title":        titleCase,
		"formValue":    formValue,
		"fieldError":   fieldError,
		"formOpen":     formOpen,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped during ExecuteTemplate.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func timeTag(t time.Time) template.HTML {
	if t.IsZero() {
		return ""
	}
	// #nosec G203 - constructed from escaped values only
	return template.HTML(fmt.Sprintf(
		`<time datetime="%s" title="%s">%s</time>`,
		t.UTC().Format(time.RFC3339),
		template.HTMLEscapeString(t.Local().Format(time.RFC1123)),
		template.HTMLEscapeString(uiutil.FormatFriendlyDate(t)),
	))
}

// seq returns 1..n, used for page links and star pickers.
func seq(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func noticeClass(severity any) string {
	switch strings.ToLower(fmt.Sprint(severity)) {
	case "success":
		return "notice-success"
	case "warning":
		return "notice-warning"
	case "error":
		return "notice-error"
	default:
		return "notice-info"
	}
}

// dict builds a map from alternating key/value arguments so partials can take parameters.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict expects key/value pairs")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formValue returns the submitted value of field when data's FormKey is key,
// otherwise fallback. Handlers put the last submitted form under "Form".
func formValue(data map[string]any, key, field string, fallback any) string {
	if formOpen(data, key) {
		if vals, ok := data["Form"].(map[string]string); ok {
			if v, ok := vals[field]; ok {
				return v
			}
		}
	}
	if fallback == nil {
		return ""
	}
	return fmt.Sprint(fallback)
}

// fieldError returns the validation message for field when key was the submitted form.
func fieldError(data map[string]any, key, field string) string {
	if !formOpen(data, key) {
		return ""
	}
	errs, _ := data["Errors"].(map[string]string)
	return errs[field]
}

// formOpen reports whether key is the form that was last submitted or requested for editing.
func formOpen(data map[string]any, key string) bool {
	k, _ := data["FormKey"].(string)
	return k != "" && k == key
}
