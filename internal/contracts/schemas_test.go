package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "PostCreatedEvent/1.0.0", generateKeyFromPath("schemas/events/post-created/v1.json"))
	assert.Equal(t, "PropertyCreatedEvent/1.0.0", generateKeyFromPath("schemas/events/property-created/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("schemas/events/broken.json"))
}

func TestValidateEvent_PostCreated(t *testing.T) {
	valid := []byte(`{
		"event_id": "evt-1",
		"occurred_at": "2024-06-02T10:00:00Z",
		"post": {
			"id": "recPost1",
			"property_id": "recProp1",
			"date": "2024-06-05",
			"slot": "morning",
			"broker_email": "broker@example.com"
		}
	}`)

	t.Run("valid payload passes", func(t *testing.T) {
		assert.NoError(t, ValidateEvent("PostCreatedEvent", "1.0.0", valid))
	})

	t.Run("missing required field fails", func(t *testing.T) {
		body := []byte(`{"event_id": "evt-1", "occurred_at": "2024-06-02T10:00:00Z"}`)
		assert.Error(t, ValidateEvent("PostCreatedEvent", "1.0.0", body))
	})

	t.Run("bad date format fails", func(t *testing.T) {
		body := []byte(`{
			"event_id": "evt-1",
			"occurred_at": "2024-06-02T10:00:00Z",
			"post": {
				"id": "recPost1",
				"property_id": "recProp1",
				"date": "05.06.2024",
				"slot": "morning",
				"broker_email": "broker@example.com"
			}
		}`)
		assert.Error(t, ValidateEvent("PostCreatedEvent", "1.0.0", body))
	})

	t.Run("unknown slot fails", func(t *testing.T) {
		body := []byte(`{
			"event_id": "evt-1",
			"occurred_at": "2024-06-02T10:00:00Z",
			"post": {
				"id": "recPost1",
				"property_id": "recProp1",
				"date": "2024-06-05",
				"slot": "midnight",
				"broker_email": "broker@example.com"
			}
		}`)
		assert.Error(t, ValidateEvent("PostCreatedEvent", "1.0.0", body))
	})
}

func TestValidateEvent_UnknownSchema(t *testing.T) {
	assert.Error(t, ValidateEvent("NoSuchEvent", "1.0.0", []byte(`{}`)))
	assert.Error(t, ValidateEvent("PostCreatedEvent", "9.9.9", []byte(`{}`)))
}

func TestValidateEvent_InvalidJSON(t *testing.T) {
	assert.Error(t, ValidateEvent("PostCreatedEvent", "1.0.0", []byte(`{not json`)))
}
