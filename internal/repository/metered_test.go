package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"classifieds/internal/domain"
	"classifieds/internal/lib/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	listings []domain.Listing
	err      error
}

func (s stubSource) ListAll(context.Context) ([]domain.Listing, error) {
	return s.listings, s.err
}

func (s stubSource) GetByID(_ context.Context, id string) (domain.Listing, error) {
	for _, l := range s.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Listing{}, fmt.Errorf("stub: %w", ErrListingNotFound)
}

func TestMeteredSource(t *testing.T) {
	m := metrics.NewSourceMetrics(nil)
	src := NewMeteredSource(stubSource{listings: []domain.Listing{{ID: "a"}}}, m, metrics.SourceSeed)

	got, err := src.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = src.GetByID(context.Background(), "a")
	require.NoError(t, err)

	_, err = src.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrListingNotFound)

	stats := m.GetStats().Seed
	assert.Equal(t, int64(3), stats.CallsTotal)
	assert.Equal(t, int64(0), stats.ErrorsTotal)
}

func TestMeteredSource_CountsErrors(t *testing.T) {
	m := metrics.NewSourceMetrics(nil)
	src := NewMeteredSource(stubSource{err: errors.New("db down")}, m, metrics.SourcePostgres)

	_, err := src.ListAll(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int64(1), m.GetStats().Postgres.ErrorsTotal)
}
