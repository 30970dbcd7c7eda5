// Package memstore is an in-memory repository.StoreInterface for tests. It
// enforces the same uniqueness rules as the Postgres schema and runs
// transactions serially against a copy of the data.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/repository"
	"lead-dashboard-backend/internal/roles"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type state struct {
	teams    map[uuid.UUID]models.Team
	members  map[uuid.UUID]models.TeamMember
	invites  map[uuid.UUID]models.TeamInvite
	requests map[uuid.UUID]models.TeamRequest
	leads    map[uuid.UUID]models.Lead
	profiles map[uuid.UUID]models.Profile
	seq      int64
}

func newState() *state {
	return &state{
		teams:    map[uuid.UUID]models.Team{},
		members:  map[uuid.UUID]models.TeamMember{},
		invites:  map[uuid.UUID]models.TeamInvite{},
		requests: map[uuid.UUID]models.TeamRequest{},
		leads:    map[uuid.UUID]models.Lead{},
		profiles: map[uuid.UUID]models.Profile{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.teams {
		c.teams[k] = v
	}
	for k, v := range s.members {
		c.members[k] = v
	}
	for k, v := range s.invites {
		c.invites[k] = v
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	for k, v := range s.leads {
		c.leads[k] = v
	}
	for k, v := range s.profiles {
		c.profiles[k] = v
	}
	c.seq = s.seq
	return c
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// stamp assigns an id if missing and a strictly increasing creation time
func (s *state) stamp(base *models.BaseModel) {
	s.seq++
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	base.CreatedAt = epoch.Add(time.Duration(s.seq) * time.Millisecond)
	base.UpdatedAt = base.CreatedAt
}

type db struct {
	mu sync.Mutex
	st *state

	// fault injection
	failures map[string]error
	// blindCodeCheck makes InviteCodeExists report every code as free
	blindCodeCheck bool
}

// Store implements repository.StoreInterface
type Store struct {
	db   *db
	tx   *state
	inTx bool
}

// New creates an empty store
func New() *Store {
	return &Store{db: &db{st: newState(), failures: map[string]error{}}}
}

var _ repository.StoreInterface = (*Store)(nil)

// FailOn makes the named operation (for example "Leads.AssignUnownedToTeam")
// return err until cleared with a nil err
func (s *Store) FailOn(op string, err error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err == nil {
		delete(s.db.failures, op)
		return
	}
	s.db.failures[op] = err
}

// BlindInviteCodeCheck makes InviteCodeExists always report false, so that
// collisions only surface on insert
func (s *Store) BlindInviteCodeCheck(blind bool) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.blindCodeCheck = blind
}

// view runs fn against the current data, holding the lock outside transactions
func (s *Store) view(op string, fn func(st *state) error) error {
	if s.inTx {
		if err := s.db.failures[op]; err != nil {
			return err
		}
		return fn(s.tx)
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.failures[op]; err != nil {
		return err
	}
	return fn(s.db.st)
}

func (s *Store) Teams() repository.TeamRepositoryInterface           { return teamRepo{s} }
func (s *Store) Members() repository.TeamMemberRepositoryInterface   { return memberRepo{s} }
func (s *Store) Invites() repository.TeamInviteRepositoryInterface   { return inviteRepo{s} }
func (s *Store) Requests() repository.TeamRequestRepositoryInterface { return requestRepo{s} }
func (s *Store) Leads() repository.LeadRepositoryInterface           { return leadRepo{s} }
func (s *Store) Profiles() repository.ProfileRepositoryInterface     { return profileRepo{s} }

// WithinTransaction runs fn on a private copy of the data and publishes the copy
// only if fn succeeds. Transactions are serialized.
func (s *Store) WithinTransaction(ctx context.Context, fn func(tx repository.StoreInterface) error) error {
	if s.inTx {
		return fn(s)
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &Store{db: s.db, tx: s.db.st.clone(), inTx: true}
	if err := fn(tx); err != nil {
		return err
	}
	s.db.st = tx.tx
	return nil
}

type teamRepo struct{ s *Store }

func (r teamRepo) Create(_ context.Context, team *models.Team) error {
	return r.s.view("Teams.Create", func(st *state) error {
		for _, t := range st.teams {
			if t.InviteCode == team.InviteCode {
				return apperrors.ErrInviteCodeTaken
			}
		}
		st.stamp(&team.BaseModel)
		st.teams[team.ID] = *team
		return nil
	})
}

func (r teamRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Team, error) {
	var out *models.Team
	err := r.s.view("Teams.GetByID", func(st *state) error {
		t, ok := st.teams[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		out = &t
		return nil
	})
	return out, err
}

func (r teamRepo) GetByInviteCode(_ context.Context, code string) (*models.Team, error) {
	var out *models.Team
	err := r.s.view("Teams.GetByInviteCode", func(st *state) error {
		for _, t := range st.teams {
			if t.InviteCode == code {
				t := t
				out = &t
				return nil
			}
		}
		return gorm.ErrRecordNotFound
	})
	return out, err
}

func (r teamRepo) InviteCodeExists(_ context.Context, code string) (bool, error) {
	exists := false
	err := r.s.view("Teams.InviteCodeExists", func(st *state) error {
		if r.s.db.blindCodeCheck {
			return nil
		}
		for _, t := range st.teams {
			if t.InviteCode == code {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

type memberRepo struct{ s *Store }

func (r memberRepo) Create(_ context.Context, member *models.TeamMember) error {
	return r.s.view("Members.Create", func(st *state) error {
		for _, m := range st.members {
			if m.UserID == member.UserID {
				return apperrors.ErrAlreadyMember
			}
		}
		st.stamp(&member.BaseModel)
		stored := *member
		stored.Team = nil
		st.members[member.ID] = stored
		return nil
	})
}

func (r memberRepo) Upsert(_ context.Context, member *models.TeamMember) error {
	return r.s.view("Members.Upsert", func(st *state) error {
		for id, m := range st.members {
			if m.UserID != member.UserID {
				continue
			}
			if m.TeamID != member.TeamID {
				return apperrors.ErrAlreadyMember
			}
			m.Role = member.Role
			m.UpdatedAt = m.UpdatedAt.Add(time.Millisecond)
			st.members[id] = m
			*member = m
			return nil
		}
		st.stamp(&member.BaseModel)
		stored := *member
		stored.Team = nil
		st.members[member.ID] = stored
		return nil
	})
}

func (r memberRepo) GetByID(_ context.Context, id uuid.UUID) (*models.TeamMember, error) {
	var out *models.TeamMember
	err := r.s.view("Members.GetByID", func(st *state) error {
		m, ok := st.members[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		out = &m
		return nil
	})
	return out, err
}

func (r memberRepo) GetPrimaryByUserID(_ context.Context, userID uuid.UUID) (*models.TeamMember, error) {
	var out *models.TeamMember
	err := r.s.view("Members.GetPrimaryByUserID", func(st *state) error {
		for _, m := range sortedMembers(st) {
			if m.UserID == userID {
				m := m
				if t, ok := st.teams[m.TeamID]; ok {
					m.Team = &t
				}
				out = &m
				return nil
			}
		}
		return gorm.ErrRecordNotFound
	})
	return out, err
}

func (r memberRepo) ListByTeamID(_ context.Context, teamID uuid.UUID) ([]models.TeamMember, error) {
	var out []models.TeamMember
	err := r.s.view("Members.ListByTeamID", func(st *state) error {
		for _, m := range sortedMembers(st) {
			if m.TeamID == teamID {
				out = append(out, m)
			}
		}
		return nil
	})
	return out, err
}

func (r memberRepo) UpdateRole(_ context.Context, id uuid.UUID, role roles.Role) error {
	return r.s.view("Members.UpdateRole", func(st *state) error {
		m, ok := st.members[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		m.Role = role
		st.members[id] = m
		return nil
	})
}

func (r memberRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.s.view("Members.Delete", func(st *state) error {
		if _, ok := st.members[id]; !ok {
			return gorm.ErrRecordNotFound
		}
		delete(st.members, id)
		return nil
	})
}

func sortedMembers(st *state) []models.TeamMember {
	out := make([]models.TeamMember, 0, len(st.members))
	for _, m := range st.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

type inviteRepo struct{ s *Store }

func (r inviteRepo) ListByTeamID(_ context.Context, teamID uuid.UUID) ([]models.TeamInvite, error) {
	var out []models.TeamInvite
	err := r.s.view("Invites.ListByTeamID", func(st *state) error {
		for _, inv := range st.invites {
			if inv.TeamID == teamID {
				out = append(out, inv)
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
		return nil
	})
	return out, err
}

type requestRepo struct{ s *Store }

func (r requestRepo) Create(_ context.Context, request *models.TeamRequest) error {
	return r.s.view("Requests.Create", func(st *state) error {
		if request.Status == "" {
			request.Status = models.RequestStatusPending
		}
		if !request.Status.IsValid() {
			return apperrors.ErrInvalidStatus
		}
		if request.Status == models.RequestStatusPending {
			for _, existing := range st.requests {
				if existing.TeamID == request.TeamID && existing.UserID == request.UserID &&
					existing.Status == models.RequestStatusPending {
					return apperrors.ErrPendingRequest
				}
			}
		}
		st.stamp(&request.BaseModel)
		st.requests[request.ID] = *request
		return nil
	})
}

func (r requestRepo) GetByID(_ context.Context, id uuid.UUID) (*models.TeamRequest, error) {
	var out *models.TeamRequest
	err := r.s.view("Requests.GetByID", func(st *state) error {
		req, ok := st.requests[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		out = &req
		return nil
	})
	return out, err
}

func (r requestRepo) ListPendingByTeamID(_ context.Context, teamID uuid.UUID) ([]models.TeamRequest, error) {
	var out []models.TeamRequest
	err := r.s.view("Requests.ListPendingByTeamID", func(st *state) error {
		for _, req := range st.requests {
			if req.TeamID == teamID && req.Status == models.RequestStatusPending {
				out = append(out, req)
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
		return nil
	})
	return out, err
}

func (r requestRepo) HasPending(_ context.Context, teamID, userID uuid.UUID) (bool, error) {
	found := false
	err := r.s.view("Requests.HasPending", func(st *state) error {
		for _, req := range st.requests {
			if req.TeamID == teamID && req.UserID == userID && req.Status == models.RequestStatusPending {
				found = true
				break
			}
		}
		return nil
	})
	return found, err
}

func (r requestRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to models.RequestStatus) error {
	return r.s.view("Requests.TransitionStatus", func(st *state) error {
		if !from.CanTransitionTo(to) {
			return apperrors.ErrRequestNotPending
		}
		req, ok := st.requests[id]
		if !ok || req.Status != from {
			return apperrors.ErrRequestNotPending
		}
		req.Status = to
		st.requests[id] = req
		return nil
	})
}

type leadRepo struct{ s *Store }

func (r leadRepo) AssignUnownedToTeam(_ context.Context, userID, teamID uuid.UUID) (int64, error) {
	var n int64
	err := r.s.view("Leads.AssignUnownedToTeam", func(st *state) error {
		for id, l := range st.leads {
			if l.UserID == userID && l.TeamID == nil {
				team := teamID
				l.TeamID = &team
				st.leads[id] = l
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r leadRepo) ReleaseFromTeam(_ context.Context, userID, teamID uuid.UUID) (int64, error) {
	var n int64
	err := r.s.view("Leads.ReleaseFromTeam", func(st *state) error {
		for id, l := range st.leads {
			if l.UserID == userID && l.TeamID != nil && *l.TeamID == teamID {
				l.TeamID = nil
				st.leads[id] = l
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r leadRepo) ReleaseOrphaned(_ context.Context) (int64, error) {
	var n int64
	err := r.s.view("Leads.ReleaseOrphaned", func(st *state) error {
		for id, l := range st.leads {
			if l.TeamID == nil {
				continue
			}
			held := false
			for _, m := range st.members {
				if m.UserID == l.UserID && m.TeamID == *l.TeamID {
					held = true
					break
				}
			}
			if !held {
				l.TeamID = nil
				st.leads[id] = l
				n++
			}
		}
		return nil
	})
	return n, err
}

type profileRepo struct{ s *Store }

func (r profileRepo) GetByUserIDs(_ context.Context, userIDs []uuid.UUID) ([]models.Profile, error) {
	var out []models.Profile
	err := r.s.view("Profiles.GetByUserIDs", func(st *state) error {
		wanted := make(map[uuid.UUID]struct{}, len(userIDs))
		for _, id := range userIDs {
			wanted[id] = struct{}{}
		}
		for _, p := range st.profiles {
			if _, ok := wanted[p.UserID]; ok {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}
