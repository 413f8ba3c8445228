package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCivilDate_Parse(t *testing.T) {
	t.Run("valid ISO date", func(t *testing.T) {
		d, err := ParseCivilDate("2024-06-02")
		require.NoError(t, err)
		assert.Equal(t, NewCivilDate(2024, time.June, 2), d)
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := ParseCivilDate("02.06.2024")
		assert.Error(t, err)

		_, err = ParseCivilDate("2024-06-02T10:00:00Z")
		assert.Error(t, err)
	})

	t.Run("round trip through String", func(t *testing.T) {
		d := NewCivilDate(2024, time.June, 2)
		parsed, err := ParseCivilDate(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	})
}

func TestCivilDate_Arithmetic(t *testing.T) {
	t.Run("AddDays crosses month boundary", func(t *testing.T) {
		d := NewCivilDate(2024, time.June, 28)
		assert.Equal(t, NewCivilDate(2024, time.July, 3), d.AddDays(5))
	})

	t.Run("AddDays accepts negative offsets", func(t *testing.T) {
		d := NewCivilDate(2024, time.June, 2)
		assert.Equal(t, NewCivilDate(2024, time.May, 31), d.AddDays(-2))
	})

	t.Run("DaysSince counts whole days", func(t *testing.T) {
		a := NewCivilDate(2024, time.June, 1)
		b := NewCivilDate(2024, time.June, 4)
		assert.Equal(t, 3, b.DaysSince(a))
		assert.Equal(t, -3, a.DaysSince(b))
		assert.Equal(t, 0, a.DaysSince(a))
	})

	t.Run("ordering", func(t *testing.T) {
		a := NewCivilDate(2024, time.June, 1)
		b := NewCivilDate(2024, time.June, 2)
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.True(t, a.Equal(a))
		assert.False(t, a.Equal(b))
	})

	t.Run("weekday", func(t *testing.T) {
		assert.Equal(t, time.Saturday, NewCivilDate(2024, time.June, 1).Weekday())
		assert.Equal(t, time.Friday, NewCivilDate(2024, time.June, 7).Weekday())
	})
}

func TestCivilDate_JSON(t *testing.T) {
	t.Run("marshals as ISO string", func(t *testing.T) {
		data, err := json.Marshal(NewCivilDate(2024, time.June, 2))
		require.NoError(t, err)
		assert.Equal(t, `"2024-06-02"`, string(data))
	})

	t.Run("zero date marshals as empty string", func(t *testing.T) {
		data, err := json.Marshal(CivilDate{})
		require.NoError(t, err)
		assert.Equal(t, `""`, string(data))
	})

	t.Run("unmarshals ISO string", func(t *testing.T) {
		var d CivilDate
		require.NoError(t, json.Unmarshal([]byte(`"2024-06-02"`), &d))
		assert.Equal(t, NewCivilDate(2024, time.June, 2), d)
	})

	t.Run("empty string means unset", func(t *testing.T) {
		var d CivilDate
		require.NoError(t, json.Unmarshal([]byte(`""`), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("garbage is an error", func(t *testing.T) {
		var d CivilDate
		assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
	})
}

func TestCivilDateOf(t *testing.T) {
	// Момент времени обрезается до дня в своей локации
	loc := time.FixedZone("UTC+3", 3*60*60)
	moment := time.Date(2024, time.June, 2, 23, 30, 0, 0, loc)
	assert.Equal(t, NewCivilDate(2024, time.June, 2), CivilDateOf(moment))
}
