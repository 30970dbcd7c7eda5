package profiles

import (
	"context"
	"fmt"

	"lead-dashboard-backend/internal/repository"

	"github.com/google/uuid"
)

// Profile is the display decoration attached to a user in team listings
type Profile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// DisplayName returns the best human-readable label for the profile
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}

// Directory resolves profiles for a set of users. Users without a profile are
// absent from the result; that is not an error.
type Directory interface {
	Lookup(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]Profile, error)
}

// StoreDirectory reads profiles from the profiles table
type StoreDirectory struct {
	repo repository.ProfileRepositoryInterface
}

// NewStoreDirectory creates a directory backed by the profile repository
func NewStoreDirectory(repo repository.ProfileRepositoryInterface) *StoreDirectory {
	return &StoreDirectory{repo: repo}
}

// Lookup implements Directory
func (d *StoreDirectory) Lookup(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]Profile, error) {
	rows, err := d.repo.GetByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	out := make(map[uuid.UUID]Profile, len(rows))
	for _, row := range rows {
		out[row.UserID] = Profile{FullName: row.FullName, Email: row.Email}
	}
	return out, nil
}

func uniqueIDs(userIDs []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(userIDs))
	out := make([]uuid.UUID, 0, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
