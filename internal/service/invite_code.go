package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/metrics"
	"lead-dashboard-backend/internal/repository"
)

const inviteCodeResource = "invite code space"

// InviteCodeGenerator draws fixed-width numeric invite codes without leading zeros.
// The lookup before returning is a best-effort pre-check; idx_teams_invite_code is
// what actually keeps codes unique.
type InviteCodeGenerator struct {
	digits      int
	maxAttempts int
	intn        func(n int) int
	metrics     *metrics.Metrics
}

// NewInviteCodeGenerator creates a generator for codes of the given width
func NewInviteCodeGenerator(digits, maxAttempts int, m *metrics.Metrics) *InviteCodeGenerator {
	return &InviteCodeGenerator{
		digits:      digits,
		maxAttempts: maxAttempts,
		intn:        rand.IntN,
		metrics:     m,
	}
}

// WithRandom replaces the random source; intn must return a value in [0, n)
func (g *InviteCodeGenerator) WithRandom(intn func(n int) int) *InviteCodeGenerator {
	g.intn = intn
	return g
}

// Floor is the smallest code, 10^(digits-1)
func (g *InviteCodeGenerator) Floor() int {
	floor := 1
	for i := 1; i < g.digits; i++ {
		floor *= 10
	}
	return floor
}

// SpaceSize is the number of distinct codes, 9 * 10^(digits-1)
func (g *InviteCodeGenerator) SpaceSize() int {
	return 9 * g.Floor()
}

// MaxAttempts is the retry ceiling of Generate
func (g *InviteCodeGenerator) MaxAttempts() int {
	return g.maxAttempts
}

// Generate returns a code no team holds yet according to teams. After
// maxAttempts collisions it fails with a ResourceExhaustedError.
func (g *InviteCodeGenerator) Generate(ctx context.Context, teams repository.TeamRepositoryInterface) (string, error) {
	floor, space := g.Floor(), g.SpaceSize()

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		code := strconv.Itoa(floor + g.intn(space))

		exists, err := teams.InviteCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check invite code: %w", err)
		}
		if !exists {
			g.metrics.ObserveInviteCodeAttempts(attempt)
			return code, nil
		}
	}

	g.metrics.ObserveInviteCodeAttempts(g.maxAttempts)
	return "", apperrors.NewResourceExhaustedError(inviteCodeResource, g.maxAttempts)
}
