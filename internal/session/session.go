// Package session keeps per-browser state (the last catalog search) in scs
// sessions and carries the HTTP middleware that sits around them.
package session

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/mrlokans/library/internal/config"
)

// Session data keys
const (
	SessionKeyLastSearch = "last_search"
)

// CookieName is the name of the session cookie.
const CookieName = "library_session"

// Manager wraps scs.SessionManager with application-specific methods.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a configured session manager. Sessions are stored in
// the SQLite database behind sqlDB; a nil sqlDB keeps them in memory.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	sm := scs.New()

	if sqlDB != nil {
		_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
		if err != nil {
			return nil, fmt.Errorf("failed to create sessions table: %w", err)
		}
		sm.Store = sqlite3store.New(sqlDB)
	}

	if cfg.Lifetime > 0 {
		sm.Lifetime = cfg.Lifetime
	}

	sm.Cookie.Name = CookieName
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// LastSearch returns the search term remembered for this browser session.
func (m *Manager) LastSearch(r *http.Request) string {
	return m.GetString(r.Context(), SessionKeyLastSearch)
}

// SetLastSearch remembers term for later requests. An empty term clears it.
func (m *Manager) SetLastSearch(r *http.Request, term string) {
	if term == "" {
		m.ClearLastSearch(r)
		return
	}
	if m.LastSearch(r) == term {
		return
	}
	m.Put(r.Context(), SessionKeyLastSearch, term)
}

// ClearLastSearch forgets the remembered search term.
func (m *Manager) ClearLastSearch(r *http.Request) {
	if !m.Exists(r.Context(), SessionKeyLastSearch) {
		return
	}
	m.Remove(r.Context(), SessionKeyLastSearch)
}
