package service

import (
	"github.com/target/salonbook-ui/internal/clock"
	"github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/messages"
)

// MessagesView is the state the messaging panel renders.
type MessagesView struct {
	// Ready is false until the viewer's role is known and the inbox is seeded.
	Ready    bool
	Contacts []messages.Contact
	Selected messages.Contact
	Thread   []messages.Message
	Typing   bool
}

// HasSelection reports whether a conversation is open.
func (v MessagesView) HasSelection() bool { return v.Selected.ID != "" }

// MessagesService drives the in-memory messaging simulation held in each workspace.
type MessagesService struct {
	workspaces *WorkspaceStore
	clock      clock.Clock
}

// NewMessagesService constructs a MessagesService.
func NewMessagesService(workspaces *WorkspaceStore, clk clock.Clock) *MessagesService {
	if clk == nil {
		clk = clock.Real{}
	}
	return &MessagesService{workspaces: workspaces, clock: clk}
}

// View returns the current panel state.
func (s *MessagesService) View(sessionID string, role auth.Role) MessagesView {
	return s.apply(sessionID, role, nil)
}

// Select opens the conversation with contactID.
func (s *MessagesService) Select(sessionID string, role auth.Role, contactID string) MessagesView {
	return s.apply(sessionID, role, func(in *messages.Inbox, _ *messages.TypingIndicator) {
		in.Select(contactID)
	})
}

// Send appends text to the open conversation and clears the typing indicator.
func (s *MessagesService) Send(sessionID string, role auth.Role, text string) MessagesView {
	now := s.clock.Now()
	return s.apply(sessionID, role, func(in *messages.Inbox, typing *messages.TypingIndicator) {
		if _, ok := in.Send(text, now); ok {
			typing.Reset()
		}
	})
}

// Delete removes one message from a conversation.
func (s *MessagesService) Delete(sessionID string, role auth.Role, contactID, messageID string) MessagesView {
	return s.apply(sessionID, role, func(in *messages.Inbox, _ *messages.TypingIndicator) {
		in.Delete(contactID, messageID)
	})
}

// Keystroke records compose-box input and reports whether the indicator shows.
func (s *MessagesService) Keystroke(sessionID string, role auth.Role, input string) bool {
	now := s.clock.Now()
	var active bool
	s.workspaces.Get(sessionID).withInbox(role, now, func(_ *messages.Inbox, typing *messages.TypingIndicator) {
		typing.Keystroke(input, now)
		active = typing.Active(now)
	})
	return active
}

// Typing reports whether the indicator is currently showing.
func (s *MessagesService) Typing(sessionID string, role auth.Role) bool {
	now := s.clock.Now()
	var active bool
	s.workspaces.Get(sessionID).withInbox(role, now, func(_ *messages.Inbox, typing *messages.TypingIndicator) {
		active = typing.Active(now)
	})
	return active
}

func (s *MessagesService) apply(sessionID string, role auth.Role, fn func(*messages.Inbox, *messages.TypingIndicator)) MessagesView {
	now := s.clock.Now()
	var view MessagesView
	s.workspaces.Get(sessionID).withInbox(role, now, func(in *messages.Inbox, typing *messages.TypingIndicator) {
		if in == nil {
			return
		}
		if fn != nil {
			fn(in, typing)
		}
		view.Ready = true
		view.Contacts = append([]messages.Contact(nil), in.Contacts...)
		if c, ok := in.Selected(); ok {
			view.Selected = c
			view.Thread = in.Thread(c.ID)
		}
		view.Typing = typing.Active(now)
	})
	return view
}
