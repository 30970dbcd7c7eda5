package memstore

import (
	"lead-dashboard-backend/internal/database/models"
	"lead-dashboard-backend/internal/roles"

	"github.com/google/uuid"
)

// AddTeam inserts a team with an owner membership for ownerID
func (s *Store) AddTeam(ownerID uuid.UUID, name, inviteCode string) (models.Team, models.TeamMember) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	team := models.Team{OwnerID: ownerID, Name: name, InviteCode: inviteCode}
	s.db.st.stamp(&team.BaseModel)
	s.db.st.teams[team.ID] = team

	owner := models.TeamMember{TeamID: team.ID, UserID: ownerID, Role: roles.Owner}
	s.db.st.stamp(&owner.BaseModel)
	s.db.st.members[owner.ID] = owner

	return team, owner
}

// AddMember inserts a membership without uniqueness checks, so tests can build
// states the schema would reject
func (s *Store) AddMember(teamID, userID uuid.UUID, role roles.Role) models.TeamMember {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	member := models.TeamMember{TeamID: teamID, UserID: userID, Role: role}
	s.db.st.stamp(&member.BaseModel)
	s.db.st.members[member.ID] = member
	return member
}

// AddRequest inserts a join request
func (s *Store) AddRequest(teamID, userID uuid.UUID, note string, status models.RequestStatus) models.TeamRequest {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	req := models.TeamRequest{TeamID: teamID, UserID: userID, Note: note, Status: status}
	s.db.st.stamp(&req.BaseModel)
	s.db.st.requests[req.ID] = req
	return req
}

// AddInvite inserts an invitation
func (s *Store) AddInvite(teamID uuid.UUID, email string, role roles.Role) models.TeamInvite {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	inv := models.TeamInvite{TeamID: teamID, Email: email, Role: role, Token: uuid.NewString(), Status: models.InviteStatusPending}
	s.db.st.stamp(&inv.BaseModel)
	s.db.st.invites[inv.ID] = inv
	return inv
}

// AddLead inserts a lead owned by userID, optionally tagged with teamID
func (s *Store) AddLead(userID uuid.UUID, teamID *uuid.UUID, businessName string) models.Lead {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	lead := models.Lead{UserID: userID, TeamID: teamID, BusinessName: businessName}
	s.db.st.stamp(&lead.BaseModel)
	s.db.st.leads[lead.ID] = lead
	return lead
}

// AddProfile inserts a profile
func (s *Store) AddProfile(userID uuid.UUID, fullName, email string) models.Profile {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p := models.Profile{UserID: userID, FullName: fullName, Email: email}
	s.db.st.stamp(&p.BaseModel)
	s.db.st.profiles[p.ID] = p
	return p
}

// MembershipsOf returns every membership row held by userID
func (s *Store) MembershipsOf(userID uuid.UUID) []models.TeamMember {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var out []models.TeamMember
	for _, m := range sortedMembers(s.db.st) {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out
}

// TeamMembers returns the members of teamID in join order
func (s *Store) TeamMembers(teamID uuid.UUID) []models.TeamMember {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var out []models.TeamMember
	for _, m := range sortedMembers(s.db.st) {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out
}

// TeamCount returns the number of teams
func (s *Store) TeamCount() int {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return len(s.db.st.teams)
}

// Lead returns the current state of a lead
func (s *Store) Lead(id uuid.UUID) models.Lead {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.db.st.leads[id]
}

// Request returns the current state of a join request
func (s *Store) Request(id uuid.UUID) models.TeamRequest {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.db.st.requests[id]
}
