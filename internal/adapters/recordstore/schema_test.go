package recordstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

func TestFieldMap(t *testing.T) {
	t.Run("store and domain names are inverse", func(t *testing.T) {
		for domainName, storeName := range propertyFields.toStore {
			back, ok := propertyFields.domainName(storeName)
			require.True(t, ok, storeName)
			assert.Equal(t, domainName, back)
		}
	})

	t.Run("unknown domain field panics", func(t *testing.T) {
		assert.Panics(t, func() { propertyFields.store("no_such_field") })
	})

	t.Run("duplicate store name panics", func(t *testing.T) {
		assert.Panics(t, func() {
			newFieldMap(map[string]string{"a": "Same", "b": "Same"})
		})
	})
}

func TestPropertyMapping(t *testing.T) {
	property := domain.Property{
		Title:             "Sunny 3-room",
		Description:       "Near the park",
		Street:            "Herzl",
		Number:            "12",
		Neighborhood:      "Center",
		City:              "Tel Aviv",
		Price:             2500000,
		Type:              domain.TypeApartment,
		Rooms:             3,
		Floor:             "4",
		Mode:              domain.ModeSale,
		OffersUntil:       14,
		ExclusivityDocURL: "https://files.example.com/doc.pdf",
		BrokerEmail:       "broker@example.com",
		LastPostedOn:      domain.NewCivilDate(2024, time.June, 1),
	}

	t.Run("round trip through store fields", func(t *testing.T) {
		fields := propertyToFields(property)
		got := propertyFromRecord(record{ID: "rec123", Fields: fields})

		assert.Equal(t, "rec123", got.ID)
		assert.Equal(t, property.Title, got.Title)
		assert.Equal(t, property.Price, got.Price)
		assert.Equal(t, property.Type, got.Type)
		assert.Equal(t, property.Mode, got.Mode)
		assert.Equal(t, property.Number, got.Number)
		assert.Equal(t, property.BrokerEmail, got.BrokerEmail)
		assert.Equal(t, property.ExclusivityDocURL, got.ExclusivityDocURL)
		assert.Equal(t, property.LastPostedOn, got.LastPostedOn)
	})

	t.Run("store field names are human readable", func(t *testing.T) {
		fields := propertyToFields(property)
		assert.Contains(t, fields, "House Number")
		assert.Contains(t, fields, "Property Type")
		assert.Contains(t, fields, "Marketing Mode")
		assert.NotContains(t, fields, "number")
	})

	t.Run("optional fields are omitted when empty", func(t *testing.T) {
		fields := propertyToFields(domain.Property{Title: "Bare"})
		assert.NotContains(t, fields, "Offers Until")
		assert.NotContains(t, fields, "Exclusivity Document")
		assert.NotContains(t, fields, "Last Posted On")
	})

	t.Run("created time comes from the record envelope", func(t *testing.T) {
		created := time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)
		got := propertyFromRecord(record{ID: "rec1", CreatedTime: created, Fields: map[string]any{}})
		assert.Equal(t, created, got.CreatedAt)
	})

	t.Run("patch carries only set fields", func(t *testing.T) {
		price := 99.5
		fields := propertyPatchToFields(domain.PropertyPatch{Price: &price})
		assert.Equal(t, map[string]any{"Price": 99.5}, fields)
	})
}

func TestPostMapping(t *testing.T) {
	post := domain.Post{
		PropertyID:    "recProp1",
		PropertyTitle: "Sunny 3-room",
		Date:          domain.NewCivilDate(2024, time.June, 5),
		Slot:          domain.SlotMorning,
		BrokerEmail:   "broker@example.com",
	}

	t.Run("property reference is a linked record array", func(t *testing.T) {
		fields := postToFields(post)
		assert.Equal(t, []string{"recProp1"}, fields["Property"])
		assert.Equal(t, "2024-06-05", fields["Date"])
		assert.Equal(t, "morning", fields["Time Slot"])
	})

	t.Run("round trip", func(t *testing.T) {
		fields := postToFields(post)
		// хранилище отдает ссылки как []any
		fields["Property"] = []any{"recProp1"}
		got := postFromRecord(record{ID: "recPost1", Fields: fields})

		assert.Equal(t, "recPost1", got.ID)
		assert.Equal(t, post.PropertyID, got.PropertyID)
		assert.Equal(t, post.Date, got.Date)
		assert.Equal(t, post.Slot, got.Slot)
		assert.Equal(t, post.BrokerEmail, got.BrokerEmail)
	})

	t.Run("malformed stored date reads as unset", func(t *testing.T) {
		got := postFromRecord(record{ID: "r", Fields: map[string]any{"Date": "tomorrow"}})
		assert.True(t, got.Date.IsZero())
	})
}
