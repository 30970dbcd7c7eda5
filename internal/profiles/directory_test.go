package profiles_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lead-dashboard-backend/internal/database/models"
	"lead-dashboard-backend/internal/mocks"
	"lead-dashboard-backend/internal/profiles"

	"github.com/go-ldap/ldap/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type countingDirectory struct {
	mu     sync.Mutex
	data   map[uuid.UUID]profiles.Profile
	err    error
	calls  int
	lastIn []uuid.UUID
}

func (d *countingDirectory) Lookup(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]profiles.Profile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	d.lastIn = userIDs
	if d.err != nil {
		return nil, d.err
	}
	out := make(map[uuid.UUID]profiles.Profile)
	for _, id := range userIDs {
		if p, ok := d.data[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type fakeSearcher struct {
	entries []*ldap.Entry
	err     error
	filter  string
}

func (s *fakeSearcher) Search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	s.filter = req.Filter
	if s.err != nil {
		return nil, s.err
	}
	return &ldap.SearchResult{Entries: s.entries}, nil
}

// StoreDirectoryTestSuite tests the profile-table directory
type StoreDirectoryTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockProfileRepositoryInterface
	dir      *profiles.StoreDirectory
}

func (suite *StoreDirectoryTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.dir = profiles.NewStoreDirectory(suite.mockRepo)
}

func (suite *StoreDirectoryTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StoreDirectoryTestSuite) TestLookupMapsRows() {
	alice, bob := uuid.New(), uuid.New()
	suite.mockRepo.EXPECT().
		GetByUserIDs(gomock.Any(), []uuid.UUID{alice, bob}).
		Return([]models.Profile{{UserID: alice, FullName: "Alice", Email: "alice@example.com"}}, nil)

	got, err := suite.dir.Lookup(context.Background(), []uuid.UUID{alice, bob})

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal("Alice", got[alice].DisplayName())
	_, ok := got[bob]
	suite.False(ok)
}

func (suite *StoreDirectoryTestSuite) TestLookupWrapsRepositoryError() {
	suite.mockRepo.EXPECT().GetByUserIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := suite.dir.Lookup(context.Background(), []uuid.UUID{uuid.New()})

	suite.Error(err)
	suite.Contains(err.Error(), "failed to load profiles")
}

func TestStoreDirectoryTestSuite(t *testing.T) {
	suite.Run(t, new(StoreDirectoryTestSuite))
}

func TestDisplayNameFallsBackToEmail(t *testing.T) {
	assert.Equal(t, "a@example.com", profiles.Profile{Email: "a@example.com"}.DisplayName())
	assert.Equal(t, "A", profiles.Profile{FullName: "A", Email: "a@example.com"}.DisplayName())
	assert.Equal(t, "", profiles.Profile{}.DisplayName())
}

func TestCachedDirectory(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	next := &countingDirectory{data: map[uuid.UUID]profiles.Profile{
		alice: {FullName: "Alice"},
	}}
	dir := profiles.NewCachedDirectory(next, 16, time.Minute)

	got, err := dir.Lookup(context.Background(), []uuid.UUID{alice, bob, alice})
	require.NoError(t, err)
	assert.Equal(t, "Alice", got[alice].FullName)
	assert.Equal(t, 1, next.calls)
	assert.Len(t, next.lastIn, 2)

	// alice is cached, bob had no profile and is asked for again
	_, err = dir.Lookup(context.Background(), []uuid.UUID{alice, bob})
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
	assert.Equal(t, []uuid.UUID{bob}, next.lastIn)

	_, err = dir.Lookup(context.Background(), []uuid.UUID{alice})
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedDirectoryRetriesFailedEnrichment(t *testing.T) {
	alice := uuid.New()
	next := &countingDirectory{data: map[uuid.UUID]profiles.Profile{
		alice: {Email: "alice@example.com"},
	}}
	searcher := &fakeSearcher{err: errors.New("ldap down")}
	dial := func() (profiles.Searcher, func(), error) { return searcher, func() {}, nil }
	dir := profiles.NewCachedDirectory(profiles.NewLDAPDirectoryWithDialer(next, dial, "dc=example", 5), 16, time.Minute)

	got, err := dir.Lookup(context.Background(), []uuid.UUID{alice})
	require.NoError(t, err)
	assert.Empty(t, got[alice].FullName)

	searcher.err = nil
	searcher.entries = []*ldap.Entry{
		ldap.NewEntry("cn=alice,dc=example", map[string][]string{
			"mail":        {"alice@example.com"},
			"displayName": {"Alice Liddell"},
		}),
	}

	got, err = dir.Lookup(context.Background(), []uuid.UUID{alice})
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", got[alice].FullName)
	assert.Equal(t, 2, next.calls)

	_, err = dir.Lookup(context.Background(), []uuid.UUID{alice})
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedDirectoryPropagatesErrors(t *testing.T) {
	next := &countingDirectory{err: errors.New("unavailable")}
	dir := profiles.NewCachedDirectory(next, 16, time.Minute)

	_, err := dir.Lookup(context.Background(), []uuid.UUID{uuid.New()})
	assert.Error(t, err)
}

func TestLDAPDirectoryFillsMissingNames(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	next := &countingDirectory{data: map[uuid.UUID]profiles.Profile{
		alice: {Email: "Alice@Example.com"},
		bob:   {FullName: "Bob", Email: "bob@example.com"},
	}}
	searcher := &fakeSearcher{entries: []*ldap.Entry{
		ldap.NewEntry("cn=alice,dc=example", map[string][]string{
			"mail":        {"alice@example.com"},
			"displayName": {"Alice Liddell"},
		}),
	}}
	closed := false
	dial := func() (profiles.Searcher, func(), error) {
		return searcher, func() { closed = true }, nil
	}
	dir := profiles.NewLDAPDirectoryWithDialer(next, dial, "dc=example", 5)

	got, err := dir.Lookup(context.Background(), []uuid.UUID{alice, bob})

	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", got[alice].FullName)
	assert.Equal(t, "Bob", got[bob].FullName)
	assert.Equal(t, "(|(mail=alice@example.com))", searcher.filter)
	assert.True(t, closed)
}

func TestLDAPDirectoryIsBestEffort(t *testing.T) {
	alice := uuid.New()
	next := &countingDirectory{data: map[uuid.UUID]profiles.Profile{
		alice: {Email: "alice@example.com"},
	}}

	t.Run("dial failure", func(t *testing.T) {
		dial := func() (profiles.Searcher, func(), error) { return nil, nil, errors.New("refused") }
		dir := profiles.NewLDAPDirectoryWithDialer(next, dial, "dc=example", 5)

		got, err := dir.Lookup(context.Background(), []uuid.UUID{alice})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", got[alice].DisplayName())
	})

	t.Run("search failure", func(t *testing.T) {
		searcher := &fakeSearcher{err: errors.New("size limit")}
		dial := func() (profiles.Searcher, func(), error) { return searcher, func() {}, nil }
		dir := profiles.NewLDAPDirectoryWithDialer(next, dial, "dc=example", 5)

		got, err := dir.Lookup(context.Background(), []uuid.UUID{alice})

		require.NoError(t, err)
		assert.Empty(t, got[alice].FullName)
	})

	t.Run("nothing to enrich skips dialing", func(t *testing.T) {
		dialed := false
		dial := func() (profiles.Searcher, func(), error) {
			dialed = true
			return nil, nil, errors.New("unexpected")
		}
		dir := profiles.NewLDAPDirectoryWithDialer(&countingDirectory{}, dial, "dc=example", 5)

		_, err := dir.Lookup(context.Background(), []uuid.UUID{uuid.New()})

		require.NoError(t, err)
		assert.False(t, dialed)
	})
}
