package planet

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	apperrors "planets-api/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	planets map[int64]Planet
	err     error
	calls   []int64
}

func (s *stubStore) FindByID(_ context.Context, id int64) (*Planet, error) {
	s.calls = append(s.calls, id)
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.planets[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServiceGetByID(t *testing.T) {
	store := &stubStore{planets: map[int64]Planet{3: {Name: "Earth", ID: 3}}}
	svc := NewService(store, discardLogger())

	got, err := svc.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Earth", got.Name)

	got, err = svc.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, []int64{3, 4}, store.calls)
}

func TestServiceGetByIDWrapsStoreErrors(t *testing.T) {
	cause := errors.New("server selection timeout")
	svc := NewService(&stubStore{err: cause}, discardLogger())

	_, err := svc.GetByID(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.GetType(err))
}
