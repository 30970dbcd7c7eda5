package profiles

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"lead-dashboard-backend/internal/config"
	"lead-dashboard-backend/internal/logger"

	"github.com/go-ldap/ldap/v3"
	"github.com/google/uuid"
)

// Searcher is the subset of an LDAP connection used for profile lookups
type Searcher interface {
	Search(req *ldap.SearchRequest) (*ldap.SearchResult, error)
}

// DialFunc opens a bound LDAP connection and returns a function that closes it
type DialFunc func() (Searcher, func(), error)

// LDAPDirectory fills display names that the wrapped directory lacks by
// searching the corporate directory by mail address
type LDAPDirectory struct {
	next       Directory
	dial       DialFunc
	baseDN     string
	timeoutSec int
}

// NewLDAPDirectory wraps next with LDAP display-name enrichment
func NewLDAPDirectory(next Directory, cfg *config.Config) *LDAPDirectory {
	return NewLDAPDirectoryWithDialer(next, TLSDialer(cfg), cfg.LDAPBaseDN, cfg.LDAPTimeoutSec)
}

// NewLDAPDirectoryWithDialer wraps next using a custom connection factory
func NewLDAPDirectoryWithDialer(next Directory, dial DialFunc, baseDN string, timeoutSec int) *LDAPDirectory {
	return &LDAPDirectory{next: next, dial: dial, baseDN: baseDN, timeoutSec: timeoutSec}
}

// TLSDialer returns a DialFunc that connects over TLS and binds with the configured credentials
func TLSDialer(cfg *config.Config) DialFunc {
	return func() (Searcher, func(), error) {
		addr := cfg.LDAPHost + ":" + cfg.LDAPPort

		l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: cfg.LDAPInsecureSkipVerify})
		if err != nil {
			return nil, nil, err
		}

		if cfg.LDAPTimeoutSec > 0 {
			l.SetTimeout(time.Duration(cfg.LDAPTimeoutSec) * time.Second)
		}

		if err := l.Bind(cfg.LDAPBindDN, cfg.LDAPBindPW); err != nil {
			l.Close()
			return nil, nil, err
		}

		return l, func() { l.Close() }, nil
	}
}

// Lookup implements Directory. LDAP failures are logged and the wrapped
// directory's result is returned unchanged.
func (d *LDAPDirectory) Lookup(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]Profile, error) {
	found, err := d.next.Lookup(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	byMail := make(map[string][]uuid.UUID)
	for id, p := range found {
		if p.FullName == "" && p.Email != "" {
			mail := strings.ToLower(p.Email)
			byMail[mail] = append(byMail[mail], id)
		}
	}
	if len(byMail) == 0 {
		return found, nil
	}

	names, err := d.searchDisplayNames(byMail)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("ldap profile enrichment failed")
		return found, nil
	}

	for mail, name := range names {
		for _, id := range byMail[mail] {
			p := found[id]
			p.FullName = name
			found[id] = p
		}
	}
	return found, nil
}

func (d *LDAPDirectory) searchDisplayNames(byMail map[string][]uuid.UUID) (map[string]string, error) {
	conn, closeConn, err := d.dial()
	if err != nil {
		return nil, err
	}
	defer closeConn()

	var filter strings.Builder
	filter.WriteString("(|")
	for mail := range byMail {
		filter.WriteString("(mail=" + ldap.EscapeFilter(mail) + ")")
	}
	filter.WriteString(")")

	req := ldap.NewSearchRequest(
		d.baseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		d.timeoutSec,
		false,
		filter.String(),
		[]string{"displayName", "mail"},
		nil,
	)

	res, err := conn.Search(req)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(res.Entries))
	for _, e := range res.Entries {
		mail := strings.ToLower(e.GetAttributeValue("mail"))
		name := e.GetAttributeValue("displayName")
		if mail != "" && name != "" {
			out[mail] = name
		}
	}
	return out, nil
}
