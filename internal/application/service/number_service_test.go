package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/invoicely/invoicely-api/pkg/apperror"
)

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 10, 30, 0, 0, time.UTC)
	}
}

func TestNumberServiceAllocate(t *testing.T) {
	t.Parallel()

	repo := &fakeSequenceRepo{next: 7}
	s := NewNumberService(repo, "INV")
	s.now = fixedClock(2024, time.April)

	code, err := s.Allocate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "INV-2024-04-0007", code)
	require.Equal(t, int64(8), repo.next)
}

func TestNumberServiceAllocateDistinct(t *testing.T) {
	t.Parallel()

	repo := &fakeSequenceRepo{next: 1}
	s := NewNumberService(repo, "INV")
	s.now = fixedClock(2026, time.January)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := s.Allocate(context.Background())
		require.NoError(t, err)
		require.False(t, seen[code], "allocated duplicate code %s", code)
		seen[code] = true
	}
}

func TestNumberServicePeekDoesNotAdvance(t *testing.T) {
	t.Parallel()

	repo := &fakeSequenceRepo{next: 3}
	s := NewNumberService(repo, "INV")
	s.now = fixedClock(2025, time.December)

	first, err := s.Peek(context.Background())
	require.NoError(t, err)
	second, err := s.Peek(context.Background())
	require.NoError(t, err)

	require.Equal(t, "INV-2025-12-0003", first)
	require.Equal(t, first, second)
	require.Equal(t, int64(3), repo.next)
}

func TestNumberServiceReset(t *testing.T) {
	t.Parallel()

	repo := &fakeSequenceRepo{next: 42}
	s := NewNumberService(repo, "INV")
	s.now = fixedClock(2024, time.June)

	require.NoError(t, s.Reset(context.Background()))

	code, err := s.Allocate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "INV-2024-06-0001", code)
}

func TestNumberServiceStorageUnavailable(t *testing.T) {
	t.Parallel()

	s := NewNumberService(&fakeSequenceRepo{failing: true}, "INV")

	_, err := s.Allocate(context.Background())
	require.Error(t, err)
	require.Equal(t, http.StatusServiceUnavailable, apperror.GetAppError(err).Code)
}
