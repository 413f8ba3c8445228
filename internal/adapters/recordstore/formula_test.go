package recordstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldEquals(t *testing.T) {
	t.Run("plain value", func(t *testing.T) {
		assert.Equal(t, "{Broker Email} = 'broker@example.com'", fieldEquals("Broker Email", "broker@example.com"))
	})

	t.Run("single quotes are escaped", func(t *testing.T) {
		assert.Equal(t, `{Title} = 'O\'Brien\'s flat'`, fieldEquals("Title", "O'Brien's flat"))
	})

	t.Run("backslashes are escaped first", func(t *testing.T) {
		assert.Equal(t, `{Title} = 'a\\b'`, fieldEquals("Title", `a\b`))
	})
}

func TestFieldEqualsFold(t *testing.T) {
	t.Run("value is lowercased and wrapped in LOWER", func(t *testing.T) {
		assert.Equal(t, "LOWER({Email}) = 'broker@example.com'", fieldEqualsFold("Email", "Broker@Example.COM"))
	})
}
