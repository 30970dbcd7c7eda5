package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation = "23505"

	constraintTeamInviteCode = "idx_teams_invite_code"
	constraintMemberUser     = "idx_team_members_user"
	constraintPendingRequest = "idx_team_requests_pending"
)

// Store is the gorm-backed StoreInterface. It is safe for concurrent use.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over db
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Teams() TeamRepositoryInterface           { return NewTeamRepository(s.db) }
func (s *Store) Members() TeamMemberRepositoryInterface   { return NewTeamMemberRepository(s.db) }
func (s *Store) Invites() TeamInviteRepositoryInterface   { return NewTeamInviteRepository(s.db) }
func (s *Store) Requests() TeamRequestRepositoryInterface { return NewTeamRequestRepository(s.db) }
func (s *Store) Leads() LeadRepositoryInterface           { return NewLeadRepository(s.db) }
func (s *Store) Profiles() ProfileRepositoryInterface     { return NewProfileRepository(s.db) }

// WithinTransaction runs fn against a store bound to a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) WithinTransaction(ctx context.Context, fn func(tx StoreInterface) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// isUniqueViolation reports whether err is a Postgres unique violation on constraint.
// An empty constraint matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
}
