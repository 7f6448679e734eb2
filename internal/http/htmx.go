package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Client-side events raised through Hx-Trigger. app.js listens for both.
const (
	EventShowToast  = "showToast"
	EventTabChanged = "tabChanged"
)

const (
	hxRequest        = "Hx-Request"
	hxHistoryRestore = "Hx-History-Restore-Request"
	hxTrigger        = "Hx-Trigger"
	hxRedirect       = "Hx-Redirect"
)

func headerIsTrue(r *http.Request, name string) bool {
	return strings.EqualFold(r.Header.Get(name), "true")
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool { return headerIsTrue(r, hxRequest) }

// WantsPartial reports whether a dashboard section may be answered with its
// fragment alone. History restores rebuild the whole document.
func WantsPartial(r *http.Request) bool {
	return IsHTMX(r) && !headerIsTrue(r, hxHistoryRestore)
}

// SetHXTrigger merges event into the JSON object carried by Hx-Trigger, so a
// toast and a tab change can ride on the same response. A nil payload is sent as true.
func SetHXTrigger(w http.ResponseWriter, event string, payload any) {
	events := map[string]any{}
	if prev := w.Header().Get(hxTrigger); prev != "" {
		if json.Unmarshal([]byte(prev), &events) != nil {
			events = map[string]any{prev: true}
		}
	}
	if payload == nil {
		events[event] = true
	} else {
		events[event] = payload
	}
	b, err := json.Marshal(events)
	if err != nil {
		b = []byte(`{"` + event + `":true}`)
	}
	w.Header().Set(hxTrigger, string(b))
}

// HTMXResponse chains htmx response headers before a bodiless 204.
type HTMXResponse struct {
	w http.ResponseWriter
}

func HTMX(w http.ResponseWriter) *HTMXResponse { return &HTMXResponse{w: w} }

func (h *HTMXResponse) Trigger(event string, payload any) *HTMXResponse {
	SetHXTrigger(h.w, event, payload)
	return h
}

// Redirect sends the browser to url with a full navigation (login, logout).
func (h *HTMXResponse) Redirect(url string) {
	h.w.Header().Set(hxRedirect, url)
	h.NoContent()
}

func (h *HTMXResponse) NoContent() { h.w.WriteHeader(http.StatusNoContent) }
