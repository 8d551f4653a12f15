package pos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	t          *testing.T
	customers  map[uint]Customer
	putBodies  []string
	putCount   int
	getByIDCnt int
}

func newFakeBackend(t *testing.T, customers ...Customer) *fakeBackend {
	b := &fakeBackend{t: t, customers: make(map[uint]Customer)}
	for _, c := range customers {
		b.customers[c.ID] = c
	}
	return b
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/clients", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			items := make([]Customer, 0, len(b.customers))
			for _, c := range b.customers {
				items = append(items, c)
			}
			writeEnvelope(w, map[string]any{"items": items, "total": len(items)})
		case http.MethodPost:
			var c Customer
			require.NoError(b.t, json.NewDecoder(r.Body).Decode(&c))
			c.ID = uint(len(b.customers) + 100)
			b.customers[c.ID] = c
			w.WriteHeader(http.StatusCreated)
			writeEnvelope(w, c)
		}
	})
	mux.HandleFunc("/clients/", func(w http.ResponseWriter, r *http.Request) {
		var id uint
		fmt.Sscanf(strings.TrimPrefix(r.URL.Path, "/clients/"), "%d", &id)
		current, ok := b.customers[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			b.getByIDCnt++
			writeEnvelope(w, current)
		case http.MethodPut:
			b.putCount++
			raw, err := io.ReadAll(r.Body)
			require.NoError(b.t, err)
			b.putBodies = append(b.putBodies, string(raw))

			var fields map[string]any
			require.NoError(b.t, json.Unmarshal(raw, &fields))
			if phone, ok := fields["phone"].(string); ok {
				current.Phone = phone
			}
			if name, ok := fields["name"].(string); ok {
				current.Name = name
			}
			b.customers[id] = current
			writeEnvelope(w, current)
		case http.MethodDelete:
			delete(b.customers, id)
			w.WriteHeader(http.StatusNoContent)
		}
	})
	return mux
}

func writeEnvelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func TestStore_UpdateSendsOnlyChangedFields(t *testing.T) {
	backend := newFakeBackend(t, Customer{ID: 3, Name: "Ana", Phone: "555-0001"})
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	store := NewCustomerStore(NewClient(server.URL))
	_, err := store.List(context.Background())
	require.NoError(t, err)

	updated, err := store.Update(context.Background(), 3, map[string]any{
		"name":  "Ana",
		"phone": "555-0002",
	})
	require.NoError(t, err)

	require.Len(t, backend.putBodies, 1)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(backend.putBodies[0]), &payload))
	assert.Equal(t, map[string]any{"phone": "555-0002"}, payload, "payload must contain exactly the differing fields")
	assert.Equal(t, "555-0002", updated.Phone)
}

func TestStore_UpdateNoChangesSkipsWrite(t *testing.T) {
	backend := newFakeBackend(t, Customer{ID: 3, Name: "Ana", Phone: "555-0001"})
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	store := NewCustomerStore(NewClient(server.URL))

	updated, err := store.Update(context.Background(), 3, map[string]any{
		"name":  "Ana",
		"phone": "555-0001",
	})
	require.NoError(t, err)

	assert.Zero(t, backend.putCount, "identical values must issue zero write calls")
	assert.Equal(t, 1, backend.getByIDCnt, "the authoritative copy is still fetched")
	assert.Equal(t, "Ana", updated.Name)
}

func TestStore_UpdateReconcilesList(t *testing.T) {
	backend := newFakeBackend(t,
		Customer{ID: 1, Name: "Ana", Phone: "555-0001"},
		Customer{ID: 2, Name: "Luis", Phone: "555-0009"},
	)
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	store := NewCustomerStore(NewClient(server.URL))
	_, err := store.List(context.Background())
	require.NoError(t, err)

	updated, err := store.Update(context.Background(), 1, map[string]any{"phone": "555-0002"})
	require.NoError(t, err)

	items := store.Items()
	require.Len(t, items, 2)
	matches := 0
	for _, item := range items {
		if item.ID == 1 {
			matches++
			assert.Equal(t, updated, item, "list element must equal the server's returned entity")
		}
	}
	assert.Equal(t, 1, matches)
}

func TestStore_DeleteRemovesElement(t *testing.T) {
	customers := make([]Customer, 0, 10)
	for i := uint(1); i <= 10; i++ {
		customers = append(customers, Customer{ID: i, Name: fmt.Sprintf("c%d", i)})
	}
	backend := newFakeBackend(t, customers...)
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	store := NewCustomerStore(NewClient(server.URL))
	_, err := store.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), 7))

	items := store.Items()
	assert.Len(t, items, 9)
	for _, item := range items {
		assert.NotEqual(t, uint(7), item.ID)
	}
}

func TestStore_CreateAppends(t *testing.T) {
	backend := newFakeBackend(t, Customer{ID: 1, Name: "Ana"})
	server := httptest.NewServer(backend.handler())
	defer server.Close()

	store := NewCustomerStore(NewClient(server.URL))
	_, err := store.List(context.Background())
	require.NoError(t, err)

	created, err := store.Create(context.Background(), map[string]any{"name": "Luis"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	items := store.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, created, items[len(items)-1])
}

func TestStore_ErrorsAreNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := NewCustomerStore(NewClient(server.URL))

	_, err := store.List(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = store.Get(context.Background(), 1)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestStore_RequestsCarryBearerToken(t *testing.T) {
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		writeEnvelope(w, map[string]any{"items": []Customer{}, "total": 0})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetTokenSource(func() string { return "abc123" })

	store := NewCustomerStore(client)
	_, err := store.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", authHeader)
}

func TestRole_UnmarshalDualRepresentation(t *testing.T) {
	var user User
	raw := `{"id":5,"name":"Eva","email":"e@x.com","status":"active","roleIds":[1],"roles":[{"id":1,"name":"admin"},2]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &user))

	require.Len(t, user.Roles, 2)
	assert.Equal(t, Role{ID: 1, Name: "admin"}, user.Roles[0])
	assert.Equal(t, Role{ID: 2}, user.Roles[1], "bare numeric ids normalize to the canonical shape")
}

func TestNumber_CoercesClearedValues(t *testing.T) {
	var product Product
	raw := `{"id":1,"name":"Cafe","sku":"CAFE-250","price":"","cost":null,"stock":4,"minStock":10}`
	require.NoError(t, json.Unmarshal([]byte(raw), &product))

	assert.Equal(t, Number(0), product.Price)
	assert.Equal(t, Number(0), product.Cost)

	raw = `{"id":1,"price":"12.5"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &product))
	assert.Equal(t, Number(12.5), product.Price)
}
