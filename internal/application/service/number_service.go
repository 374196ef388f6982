package service

import (
	"context"
	"fmt"
	"time"

	"github.com/invoicely/invoicely-api/internal/domain/repository"
)

// NumberService mints sequential invoice numbers of the form
// PREFIX-YYYY-MM-NNNN, where year and month come from the allocation time and
// NNNN is a zero-padded durable counter. The counter lives in the database and
// is the single authority: any UI-side preview is a cache reconciled against
// Peek, never a source of numbers.
type NumberService struct {
	seqRepo repository.SequenceRepository
	prefix  string
	now     func() time.Time
}

// NewNumberService creates a new invoice number service
func NewNumberService(seqRepo repository.SequenceRepository, prefix string) *NumberService {
	return &NumberService{
		seqRepo: seqRepo,
		prefix:  prefix,
		now:     time.Now,
	}
}

// Allocate returns the next invoice number and durably advances the counter.
// Two sequential calls never return the same code. If the counter is
// unreachable the error is storage-unavailable; there is no fallback scheme.
func (s *NumberService) Allocate(ctx context.Context) (string, error) {
	n, err := s.seqRepo.Next(ctx)
	if err != nil {
		return "", err
	}
	return s.format(n), nil
}

// Peek returns what the next Allocate would produce without mutating state.
// Used for UI preview of the upcoming number.
func (s *NumberService) Peek(ctx context.Context) (string, error) {
	n, err := s.seqRepo.Peek(ctx)
	if err != nil {
		return "", err
	}
	return s.format(n), nil
}

// Reset sets the counter back to 1. Administrative/testing operation.
func (s *NumberService) Reset(ctx context.Context) error {
	return s.seqRepo.Reset(ctx)
}

func (s *NumberService) format(n int64) string {
	return fmt.Sprintf("%s-%s-%04d", s.prefix, s.now().Format("2006-01"), n)
}
