package messages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/salonbook-ui/internal/domain/auth"
)

var fixedNow = time.Date(2024, 5, 10, 15, 4, 0, 0, time.UTC)

func TestSeedFor_RoleDependent(t *testing.T) {
	client := SeedFor(auth.RoleClient, fixedNow)
	owner := SeedFor(auth.RoleOwner, fixedNow)

	require.NotEmpty(t, client.Contacts)
	require.NotEmpty(t, owner.Contacts)
	assert.NotEqual(t, client.Contacts[0].ID, owner.Contacts[0].ID)
	sel, ok := client.Selected()
	require.True(t, ok)
	assert.Equal(t, client.Contacts[0].ID, sel.ID)
}

func TestInbox_SendHello(t *testing.T) {
	in := SeedFor(auth.RoleOwner, fixedNow)
	sel, ok := in.Selected()
	require.True(t, ok)
	before := in.Thread(sel.ID)

	msg, sent := in.Send("Hello", fixedNow)
	require.True(t, sent)

	after := in.Thread(sel.ID)
	require.Len(t, after, len(before)+1)
	last := after[len(after)-1]
	assert.Equal(t, "Hello", last.Message)
	assert.True(t, last.FromMe)
	assert.Equal(t, msg.ID, last.ID)
	assert.Equal(t, "3:04 PM", last.Time)

	sel, _ = in.Selected()
	assert.Equal(t, "Hello", sel.Preview)
}

func TestInbox_SendTrimsAndIgnoresBlank(t *testing.T) {
	in := SeedFor(auth.RoleClient, fixedNow)
	sel, _ := in.Selected()
	id := sel.ID
	n := len(in.Thread(id))

	_, sent := in.Send("   ", fixedNow)
	assert.False(t, sent)
	assert.Len(t, in.Thread(id), n)

	msg, sent := in.Send("  hi there ", fixedNow)
	assert.True(t, sent)
	assert.Equal(t, "hi there", msg.Message)
}

func TestInbox_SelectAndDelete(t *testing.T) {
	in := SeedFor(auth.RoleOwner, fixedNow)

	assert.False(t, in.Select("nobody"))
	require.True(t, in.Select("client-2"))
	sel, _ := in.Selected()
	assert.Equal(t, "client-2", sel.ID)

	msg, ok := in.Send("Twenty dollars.", fixedNow)
	require.True(t, ok)
	n := len(in.Thread("client-2"))

	assert.True(t, in.Delete("client-2", msg.ID))
	assert.Len(t, in.Thread("client-2"), n-1)
	assert.False(t, in.Delete("client-2", msg.ID))
}

func TestInbox_ThreadIsCopy(t *testing.T) {
	in := SeedFor(auth.RoleOwner, fixedNow)
	th := in.Thread("client-1")
	th[0].Message = "mutated"
	assert.NotEqual(t, "mutated", in.Thread("client-1")[0].Message)
}

func TestInbox_SendWithoutContacts(t *testing.T) {
	in := NewInbox(nil, nil)
	_, ok := in.Send("hello", fixedNow)
	assert.False(t, ok)
}
