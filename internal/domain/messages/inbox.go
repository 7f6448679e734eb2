// Package messages models the dashboard messaging panel. Conversations are
// seeded per role and live only in memory; nothing is sent to a backend.
package messages

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/target/salonbook-ui/internal/domain/auth"
)

// TimeLayout formats message timestamps in the viewer's local clock.
const TimeLayout = "3:04 PM"

// Contact is an entry in the contact list.
type Contact struct {
	ID       string
	Name     string
	Subtitle string
	Preview  string
	Online   bool
}

// Message is a single thread entry.
type Message struct {
	ID      string
	Message string
	FromMe  bool
	Time    string
}

// Inbox holds the contacts and their threads for one session.
// Inbox is not safe for concurrent use; callers serialize access.
type Inbox struct {
	Contacts   []Contact
	threads    map[string][]Message
	selectedID string
}

// NewInbox builds an inbox from contacts and threads. The first contact is selected.
func NewInbox(contacts []Contact, threads map[string][]Message) *Inbox {
	in := &Inbox{Contacts: contacts, threads: make(map[string][]Message, len(threads))}
	for id, msgs := range threads {
		in.threads[id] = append([]Message(nil), msgs...)
	}
	if len(contacts) > 0 {
		in.selectedID = contacts[0].ID
	}
	return in
}

// Selected returns the active contact, if any.
func (in *Inbox) Selected() (Contact, bool) {
	return in.contact(in.selectedID)
}

// Select switches the active thread. Unknown ids are ignored.
func (in *Inbox) Select(contactID string) bool {
	if _, ok := in.contact(contactID); !ok {
		return false
	}
	in.selectedID = contactID
	return true
}

// Thread returns a copy of the messages exchanged with contactID.
func (in *Inbox) Thread(contactID string) []Message {
	return append([]Message(nil), in.threads[contactID]...)
}

// Send appends an outgoing message to the active thread and updates the
// contact's preview. Blank text is a no-op and returns false.
func (in *Inbox) Send(text string, now time.Time) (Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, false
	}
	idx := in.index(in.selectedID)
	if idx < 0 {
		return Message{}, false
	}

	msg := Message{
		ID:      uuid.NewString(),
		Message: text,
		FromMe:  true,
		Time:    now.Format(TimeLayout),
	}
	in.threads[in.selectedID] = append(in.threads[in.selectedID], msg)
	in.Contacts[idx].Preview = text
	return msg, true
}

// Delete removes messageID from the contact's thread.
func (in *Inbox) Delete(contactID, messageID string) bool {
	msgs := in.threads[contactID]
	for i, m := range msgs {
		if m.ID == messageID {
			in.threads[contactID] = append(msgs[:i:i], msgs[i+1:]...)
			return true
		}
	}
	return false
}

func (in *Inbox) contact(id string) (Contact, bool) {
	if i := in.index(id); i >= 0 {
		return in.Contacts[i], true
	}
	return Contact{}, false
}

func (in *Inbox) index(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range in.Contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// SeedFor returns the sample conversations shown to role.
// Clients talk to salons; staff talk to their clients.
func SeedFor(role auth.Role, now time.Time) *Inbox {
	at := func(ago time.Duration) string { return now.Add(-ago).Format(TimeLayout) }

	if role == auth.RoleClient {
		contacts := []Contact{
			{ID: "salon-1", Name: "Glow Beauty Studio", Subtitle: "Hair & Nails", Preview: "Your appointment is confirmed!", Online: true},
			{ID: "salon-2", Name: "Urban Cuts", Subtitle: "Barbershop", Preview: "We have an opening on Friday."},
			{ID: "salon-3", Name: "Serenity Spa", Subtitle: "Spa & Massage", Preview: "Thanks for visiting us."},
		}
		threads := map[string][]Message{
			"salon-1": {
				{ID: "c1-1", Message: "Hi! I'd like to book a haircut for Saturday.", FromMe: true, Time: at(50 * time.Minute)},
				{ID: "c1-2", Message: "Sure, we have 10:00 or 14:30 available.", Time: at(45 * time.Minute)},
				{ID: "c1-3", Message: "10:00 works for me.", FromMe: true, Time: at(40 * time.Minute)},
				{ID: "c1-4", Message: "Your appointment is confirmed!", Time: at(35 * time.Minute)},
			},
			"salon-2": {
				{ID: "c2-1", Message: "Do you take walk-ins?", FromMe: true, Time: at(3 * time.Hour)},
				{ID: "c2-2", Message: "We have an opening on Friday.", Time: at(2 * time.Hour)},
			},
			"salon-3": {
				{ID: "c3-1", Message: "Thanks for visiting us.", Time: at(26 * time.Hour)},
			},
		}
		return NewInbox(contacts, threads)
	}

	contacts := []Contact{
		{ID: "client-1", Name: "Sarah Johnson", Subtitle: "Regular client", Preview: "See you tomorrow!", Online: true},
		{ID: "client-2", Name: "Michael Chen", Subtitle: "New client", Preview: "How much is a beard trim?"},
		{ID: "client-3", Name: "Emma Davis", Subtitle: "Regular client", Preview: "Loved the new color!", Online: true},
	}
	threads := map[string][]Message{
		"client-1": {
			{ID: "p1-1", Message: "Can I move my appointment to 3pm?", Time: at(70 * time.Minute)},
			{ID: "p1-2", Message: "Of course, you're booked for 3pm.", FromMe: true, Time: at(65 * time.Minute)},
			{ID: "p1-3", Message: "See you tomorrow!", Time: at(60 * time.Minute)},
		},
		"client-2": {
			{ID: "p2-1", Message: "How much is a beard trim?", Time: at(5 * time.Hour)},
		},
		"client-3": {
			{ID: "p3-1", Message: "Loved the new color!", Time: at(30 * time.Hour)},
		},
	}
	return NewInbox(contacts, threads)
}
