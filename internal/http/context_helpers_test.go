package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/target/salonbook-ui/internal/testutil"
)

func TestSessionContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetSessionFromContext(ctx))
	assert.Equal(t, ctx, SetSessionInContext(ctx, nil))

	sess := testutil.NewSession().Build()
	ctx = SetSessionInContext(ctx, &sess)

	got := GetSessionFromContext(ctx)
	if assert.NotNil(t, got) {
		assert.Equal(t, "sess-1", got.ID)
		assert.Same(t, &sess, got)
	}
}
