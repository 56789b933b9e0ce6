package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"registro/models"
)

var ErrFormNotFound = errors.New("form not found")

// Forms is the process-wide form store, set up by Init.
var Forms *FormStore

// FormStore keeps form states in memory until they sit idle for ttl.
type FormStore struct {
	// mu serializes read-modify-write cycles; the cache locks single calls only.
	mu    sync.Mutex
	cache *gocache.Cache
	ttl   time.Duration
}

func Init(ttl time.Duration) {
	Forms = NewFormStore(ttl)
}

func NewFormStore(ttl time.Duration) *FormStore {
	return &FormStore{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *FormStore) New() models.FormState {
	state := models.NewFormState(uuid.NewString())
	s.cache.Set(state.ID, state, s.ttl)
	return state
}

func (s *FormStore) Get(id string) (models.FormState, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return models.FormState{}, ErrFormNotFound
	}
	return v.(models.FormState), nil
}

// Save stores state and refreshes its expiry.
func (s *FormStore) Save(state models.FormState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache.Get(state.ID); !ok {
		return ErrFormNotFound
	}
	s.cache.Set(state.ID, state, s.ttl)
	return nil
}

// Update loads the form, applies fn and stores the result as one step.
// Nothing is stored when fn fails.
func (s *FormStore) Update(id string, fn func(*models.FormState) error) (models.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(id)
	if !ok {
		return models.FormState{}, ErrFormNotFound
	}
	state := v.(models.FormState)
	if err := fn(&state); err != nil {
		return state, err
	}
	s.cache.Set(id, state, s.ttl)
	return state, nil
}

func (s *FormStore) Delete(id string) {
	s.cache.Delete(id)
}

func (s *FormStore) Count() int {
	return s.cache.ItemCount()
}
