package usecase

import (
	"context"
	"errors"
	"fmt"

	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/usecase/interfaces"
)

// MaxEstimateNumberAttempts bounds allocation retries for one create request.
const MaxEstimateNumberAttempts = 5

// EstimateNumberGenerator hands out EST-NNNN numbers from the repository's
// per-tenant counter. A number that already exists, or that loses the race
// on insert, costs one attempt.
type EstimateNumberGenerator struct {
	repo        interfaces.IEstimateRepository
	maxAttempts int
}

func NewEstimateNumberGenerator(repo interfaces.IEstimateRepository) *EstimateNumberGenerator {
	return &EstimateNumberGenerator{repo: repo, maxAttempts: MaxEstimateNumberAttempts}
}

// Allocate finds a free number and passes it to insert. When insert fails
// with interfaces.ErrDuplicateEstimateNumber the next number is tried.
func (g *EstimateNumberGenerator) Allocate(ctx context.Context, tenantID string, insert func(number string) error) (string, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		seq, err := g.repo.AllocateEstimateSequence(ctx, tenantID)
		if err != nil {
			return "", fmt.Errorf("allocate estimate sequence: %w", err)
		}
		number := numbering.Format(seq)

		exists, err := g.repo.EstimateNumberExists(ctx, tenantID, number)
		if err != nil {
			return "", fmt.Errorf("check estimate number: %w", err)
		}
		if exists {
			continue
		}

		err = insert(number)
		if errors.Is(err, interfaces.ErrDuplicateEstimateNumber) {
			continue
		}
		if err != nil {
			return "", err
		}
		return number, nil
	}
	return "", ErrEstimateNumberExhausted
}
