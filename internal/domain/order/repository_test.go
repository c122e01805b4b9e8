package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserOrEmailClauseBothGivenMatchesEither(t *testing.T) {
	// An order placed under an older email must still be found by user id,
	// so supplying both fields widens the match instead of narrowing it.
	cond, args := userOrEmailClause("user-1", "ana@example.com")

	assert.Equal(t, "user_id = ? OR user_email = ?", cond)
	require.Len(t, args, 2)
	assert.Equal(t, "user-1", args[0])
	assert.Equal(t, "ana@example.com", args[1])
}

func TestUserOrEmailClauseSingleField(t *testing.T) {
	cond, args := userOrEmailClause("user-1", "")
	assert.Equal(t, "user_id = ?", cond)
	assert.Equal(t, []interface{}{"user-1"}, args)

	cond, args = userOrEmailClause("", "ana@example.com")
	assert.Equal(t, "user_email = ?", cond)
	assert.Equal(t, []interface{}{"ana@example.com"}, args)
}

func TestUserOrEmailClauseEmpty(t *testing.T) {
	cond, args := userOrEmailClause("", "")
	assert.Empty(t, cond)
	assert.Nil(t, args)
}
