package recordstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

const testBaseID = "appTEST"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, testBaseID, "secret-key")
}

func writeRecords(w http.ResponseWriter, resp recordsResponse) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func TestClient_ListProperties(t *testing.T) {
	t.Run("follows pagination offsets", func(t *testing.T) {
		var requests []string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r.URL.RawQuery)
			assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
			assert.Equal(t, "/"+testBaseID+"/Properties", r.URL.Path)

			if r.URL.Query().Get("offset") == "" {
				writeRecords(w, recordsResponse{
					Records: []record{{ID: "rec1", Fields: map[string]any{"Title": "First"}}},
					Offset:  "page2",
				})
				return
			}
			writeRecords(w, recordsResponse{
				Records: []record{{ID: "rec2", Fields: map[string]any{"Title": "Second"}}},
			})
		})

		properties, err := client.ListProperties(context.Background(), "broker@example.com")
		require.NoError(t, err)
		require.Len(t, properties, 2)
		assert.Equal(t, "First", properties[0].Title)
		assert.Equal(t, "Second", properties[1].Title)
		assert.Len(t, requests, 2)
	})

	t.Run("filters by broker email formula", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			formula := r.URL.Query().Get("filterByFormula")
			assert.Equal(t, "{Broker Email} = 'broker@example.com'", formula)
			writeRecords(w, recordsResponse{})
		})

		properties, err := client.ListProperties(context.Background(), "broker@example.com")
		require.NoError(t, err)
		assert.Empty(t, properties)
	})

	t.Run("server error maps to RemoteError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})

		_, err := client.ListProperties(context.Background(), "broker@example.com")
		var remoteErr *domain.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, http.StatusTooManyRequests, remoteErr.StatusCode)
	})
}

func TestClient_FindBrokerByEmail(t *testing.T) {
	t.Run("matches case-insensitively", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/"+testBaseID+"/Users", r.URL.Path)
			assert.Contains(t, r.URL.Query().Get("filterByFormula"), "LOWER({Email})")
			writeRecords(w, recordsResponse{
				Records: []record{{ID: "recU1", Fields: map[string]any{
					"Name":  "Dana",
					"Email": "Broker@Example.com",
				}}},
			})
		})

		broker, err := client.FindBrokerByEmail(context.Background(), "broker@example.COM")
		require.NoError(t, err)
		assert.Equal(t, "recU1", broker.ID)
		assert.Equal(t, "Dana", broker.Name)
	})

	t.Run("no contact means ErrBrokerNotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeRecords(w, recordsResponse{})
		})

		_, err := client.FindBrokerByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrBrokerNotFound)
	})
}

func TestClient_CreateProperty(t *testing.T) {
	t.Run("resolves broker reference before creating", func(t *testing.T) {
		var order []string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/" + testBaseID + "/Users":
				order = append(order, "lookup")
				writeRecords(w, recordsResponse{
					Records: []record{{ID: "recU1", Fields: map[string]any{"Email": "broker@example.com"}}},
				})
			case "/" + testBaseID + "/Properties":
				order = append(order, "create")
				require.Equal(t, http.MethodPost, r.Method)

				var envelope recordEnvelope
				require.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
				assert.Equal(t, []any{"recU1"}, envelope.Fields["Broker"])
				assert.Equal(t, "Sunny 3-room", envelope.Fields["Title"])

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(record{
					ID:          "recP1",
					CreatedTime: time.Now().UTC(),
					Fields:      envelope.Fields,
				})
			default:
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
		})

		created, err := client.CreateProperty(context.Background(), domain.Property{
			Title:       "Sunny 3-room",
			BrokerEmail: "broker@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "recP1", created.ID)
		assert.Equal(t, []string{"lookup", "create"}, order)
	})

	t.Run("unknown broker aborts before any write", func(t *testing.T) {
		var createCalled bool
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/"+testBaseID+"/Properties" {
				createCalled = true
			}
			writeRecords(w, recordsResponse{})
		})

		_, err := client.CreateProperty(context.Background(), domain.Property{
			Title:       "Orphan",
			BrokerEmail: "nobody@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrBrokerNotFound)
		assert.False(t, createCalled)
	})
}

func TestClient_DeleteProperty(t *testing.T) {
	t.Run("missing record maps to ErrNotFound", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			http.Error(w, "not found", http.StatusNotFound)
		})

		err := client.DeleteProperty(context.Background(), "recMissing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/"+testBaseID+"/Properties/recP1", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		})

		assert.NoError(t, client.DeleteProperty(context.Background(), "recP1"))
	})
}
