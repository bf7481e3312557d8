package internet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/internet"
)

func TestNewEmail(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		e, err := internet.NewEmail("alice@sep.se")
		require.NoError(t, err)
		assert.Equal(t, "alice@sep.se", e.Value())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, v := range []string{"", "alice", "alice@", "@sep.se", "a b@sep.se"} {
			_, err := internet.NewEmail(v)
			assert.ErrorIsf(t, err, internet.ErrInvalidEmail, "value %q", v)
		}
	})
}

func TestMustParseEmail_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		internet.MustParseEmail("not-an-email")
	})
}
