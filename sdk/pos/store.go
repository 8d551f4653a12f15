package pos

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/venda-inc/venda/internal/shared/patch"
)

// Store holds the server-confirmed Resource List for one resource type and
// implements the fetch-diff-write-reconcile update protocol. The cached list
// changes only through the completion of a List, Create, Update or Delete
// call, never through draft edits.
type Store[T any] struct {
	client *Client
	path   string
	idOf   func(T) uint

	mu    sync.Mutex
	items []T
}

func NewStore[T any](client *Client, path string, idOf func(T) uint) *Store[T] {
	return &Store[T]{
		client: client,
		path:   path,
		idOf:   idOf,
	}
}

type listPayload[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// List fetches the full resource list and replaces the cached copy.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var payload listPayload[T]
	if err := s.client.doEnveloped(ctx, http.MethodGet, s.path, nil, &payload); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = payload.Items
	s.mu.Unlock()

	return s.Items(), nil
}

// Items returns a copy of the cached resource list.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get fetches the authoritative entity by id. The cache is not consulted.
func (s *Store[T]) Get(ctx context.Context, id uint) (T, error) {
	var entity T
	err := s.client.doEnveloped(ctx, http.MethodGet, s.entityPath(id), nil, &entity)
	return entity, err
}

// Create sends the payload and appends the server's entity to the list.
func (s *Store[T]) Create(ctx context.Context, payload any) (T, error) {
	var entity T
	if err := s.client.doEnveloped(ctx, http.MethodPost, s.path, payload, &entity); err != nil {
		return entity, err
	}

	s.mu.Lock()
	s.items = append(s.items, entity)
	s.mu.Unlock()

	return entity, nil
}

// Update applies proposed changes through the diff protocol:
//
//  1. fetch the authoritative entity (never the cached copy),
//  2. keep only the fields whose values actually differ,
//  3. an empty diff is a no-op success: zero writes, authoritative entity
//     returned unchanged,
//  4. otherwise send exactly the differing fields as a partial update,
//  5. the response replaces the matching list element and nothing else.
func (s *Store[T]) Update(ctx context.Context, id uint, proposed any) (T, error) {
	authoritative, err := s.Get(ctx, id)
	if err != nil {
		return authoritative, err
	}

	changed, err := patch.Changed(authoritative, proposed)
	if err != nil {
		return authoritative, err
	}
	if len(changed) == 0 {
		s.replace(authoritative)
		return authoritative, nil
	}

	var updated T
	if err := s.client.doEnveloped(ctx, http.MethodPut, s.entityPath(id), changed, &updated); err != nil {
		return updated, err
	}
	s.replace(updated)
	return updated, nil
}

// Delete removes the entity remotely, then drops it from the cached list.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	if err := s.client.do(ctx, http.MethodDelete, s.entityPath(id), nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if s.idOf(item) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store[T]) entityPath(id uint) string {
	return fmt.Sprintf("%s/%d", s.path, id)
}

// replace swaps the list element with the entity's id for the new value.
// An entity not present in the list is left alone: the list only reflects
// what a full fetch has confirmed.
func (s *Store[T]) replace(entity T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.idOf(entity)
	for i, item := range s.items {
		if s.idOf(item) == id {
			s.items[i] = entity
			return
		}
	}
}
