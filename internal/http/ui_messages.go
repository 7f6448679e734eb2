package httpx

import (
	"net/http"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/dashboard"
	"github.com/target/salonbook-ui/internal/service"
)

// messagesSection renders the messaging panel around view.
func (h *UIHandlers) messagesSection(w http.ResponseWriter, r *http.Request, view func(sess *domainauth.Session) service.MessagesView) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	v, ok := h.guardSection(w, r, sess, dashboard.TabMessages)
	if !ok {
		return
	}
	b := h.dashboardData(r, v).With("Messages", view(sess))
	h.respondSection(w, r, v, b, nil)
}

// SelectConversation opens the thread with a contact.
// GET /dashboard/messages/{contactID}.
func (h *UIHandlers) SelectConversation(w http.ResponseWriter, r *http.Request) {
	contactID := r.PathValue("contactID")
	h.messagesSection(w, r, func(sess *domainauth.Session) service.MessagesView {
		return h.Messages.Select(sess.ID, sess.Role, contactID)
	})
}

// SendMessage appends the composed text to the open thread. Blank text changes nothing.
// POST /dashboard/messages.
func (h *UIHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	text := r.PostFormValue("message")
	h.messagesSection(w, r, func(sess *domainauth.Session) service.MessagesView {
		return h.Messages.Send(sess.ID, sess.Role, text)
	})
}

// DeleteMessage removes one message from a thread.
// POST /dashboard/messages/{contactID}/{messageID}/delete.
func (h *UIHandlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	contactID, messageID := r.PathValue("contactID"), r.PathValue("messageID")
	h.messagesSection(w, r, func(sess *domainauth.Session) service.MessagesView {
		return h.Messages.Delete(sess.ID, sess.Role, contactID, messageID)
	})
}

// Typing records a compose-box keystroke and returns the typing indicator.
// POST /dashboard/messages/typing.
func (h *UIHandlers) Typing(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	active := h.Messages.Keystroke(sess.ID, sess.Role, r.PostFormValue("message"))
	h.renderFragment(w, r, "typing-indicator", map[string]any{"Typing": active})
}

// TypingStatus re-polls the indicator until the typing window lapses.
// GET /dashboard/messages/typing.
func (h *UIHandlers) TypingStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	active := h.Messages.Typing(sess.ID, sess.Role)
	h.renderFragment(w, r, "typing-indicator", map[string]any{"Typing": active})
}
