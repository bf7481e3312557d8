package composables_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/aggregates/user"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/entities/role"
	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/internet"
	"github.com/ghazalrb98/sep/pkg/composables"
)

func TestUseUser(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		u := user.New("7", "Alice", internet.MustParseEmail("alice@sep.se"), role.CustomerService)
		ctx := composables.WithUser(context.Background(), u)

		got, err := composables.UseUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "7", got.ID())
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := composables.UseUser(context.Background())
		assert.ErrorIs(t, err, composables.ErrNoUser)
	})

	t.Run("Zero_User_Counts_As_Missing", func(t *testing.T) {
		ctx := composables.WithUser(context.Background(), user.User{})
		_, err := composables.UseUser(ctx)
		assert.ErrorIs(t, err, composables.ErrNoUser)
	})
}

func TestUseToken(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		ctx := composables.WithToken(context.Background(), "tok-123")
		token, err := composables.UseToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok-123", token)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := composables.UseToken(context.Background())
		assert.ErrorIs(t, err, composables.ErrNoToken)
	})
}
