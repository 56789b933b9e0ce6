package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registro/models"
)

func TestNewAssignsUUID(t *testing.T) {
	s := NewFormStore(time.Minute)
	state := s.New()

	_, err := uuid.Parse(state.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count())
}

func TestSaveAndGet(t *testing.T) {
	s := NewFormStore(time.Minute)
	state := s.New()
	state.SetValue(models.Nombre, "Ana")
	state.Blur(models.Nombre)
	require.NoError(t, s.Save(state))

	got, err := s.Get(state.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Values.Nombre)
	assert.True(t, got.Touched(models.Nombre))
	assert.True(t, got.Result(models.Nombre).Valid)
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewFormStore(time.Minute)
	state := s.New()

	got, err := s.Get(state.ID)
	require.NoError(t, err)
	got.SetValue(models.Correo, "x@y.com")

	again, err := s.Get(state.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Values.Correo)
}

func TestUnknownForm(t *testing.T) {
	s := NewFormStore(time.Minute)

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrFormNotFound)
	assert.ErrorIs(t, s.Save(models.NewFormState("nope")), ErrFormNotFound)
}

func TestDelete(t *testing.T) {
	s := NewFormStore(time.Minute)
	state := s.New()
	s.Delete(state.ID)

	_, err := s.Get(state.ID)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestExpiry(t *testing.T) {
	s := NewFormStore(20 * time.Millisecond)
	state := s.New()
	time.Sleep(50 * time.Millisecond)

	_, err := s.Get(state.ID)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestUpdateAppliesAndStores(t *testing.T) {
	s := NewFormStore(time.Minute)
	state := s.New()

	got, err := s.Update(state.ID, func(fs *models.FormState) error {
		fs.SetValue(models.Correo, "ana@correo.com")
		return nil
	})
	require.NoError(t, err)
	assert.True(t, got.Result(models.Correo).Valid)

	again, err := s.Get(state.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@correo.com", again.Values.Correo)
}

func TestUpdateFailureStoresNothing(t *testing.T) {
	s := NewFormStore(time.Minute)
	state := s.New()
	boom := errors.New("boom")

	_, err := s.Update(state.ID, func(fs *models.FormState) error {
		fs.SetValue(models.Nombre, "Ana")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	again, err := s.Get(state.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Values.Nombre)
}

func TestUpdateUnknownForm(t *testing.T) {
	s := NewFormStore(time.Minute)
	_, err := s.Update("nope", func(*models.FormState) error { return nil })
	assert.ErrorIs(t, err, ErrFormNotFound)
}

// An input and a blur arriving together must both survive.
func TestUpdateOverlappingInputAndBlur(t *testing.T) {
	s := NewFormStore(time.Minute)
	state := s.New()

	inside := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, err := s.Update(state.ID, func(fs *models.FormState) error {
			close(inside)
			time.Sleep(20 * time.Millisecond)
			fs.SetValue(models.Nombre, "Ana")
			return nil
		})
		assert.NoError(t, err)
	}()

	go func() {
		defer wg.Done()
		<-inside
		_, err := s.Update(state.ID, func(fs *models.FormState) error {
			fs.Blur(models.Nombre)
			return nil
		})
		assert.NoError(t, err)
	}()

	wg.Wait()

	got, err := s.Get(state.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Values.Nombre)
	assert.True(t, got.Touched(models.Nombre))
	assert.True(t, got.Result(models.Nombre).Valid)
}
