package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	sessionName = "task_allocator_session"

	keyUID   = "uid"
	keyEmail = "email"
	keyName  = "name"
	keyRole  = "role"
)

var ErrNoSession = errors.New("no authenticated session")

// User is the signed-in identity carried by the cookie session.
type User struct {
	UID   string
	Email string
	Name  string
	Role  string
}

// Manager wraps the cookie store behind the small surface the handlers
// need. One instance is built at startup and shared.
type Manager struct {
	store sessions.Store
}

func NewManager(signingKey []byte, maxAgeSeconds int, secure bool) *Manager {
	store := sessions.NewCookieStore(signingKey)
	store.MaxAge(maxAgeSeconds)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode

	return &Manager{store: store}
}

// Store exposes the underlying cookie store for collaborators that
// speak gorilla/sessions directly, such as the OAuth handshake.
func (m *Manager) Store() sessions.Store {
	return m.store
}

func (m *Manager) SaveUser(w http.ResponseWriter, r *http.Request, user *User) error {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie yields a fresh session along with
		// the error; overwrite it.
		sess, _ = m.store.New(r, sessionName)
	}

	sess.Values[keyUID] = user.UID
	sess.Values[keyEmail] = user.Email
	sess.Values[keyName] = user.Name
	sess.Values[keyRole] = user.Role

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (m *Manager) CurrentUser(r *http.Request) (*User, error) {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		return nil, ErrNoSession
	}

	uid, ok := sess.Values[keyUID].(string)
	if !ok || uid == "" {
		return nil, ErrNoSession
	}

	user := &User{UID: uid}
	if email, ok := sess.Values[keyEmail].(string); ok {
		user.Email = email
	}
	if name, ok := sess.Values[keyName].(string); ok {
		user.Name = name
	}
	if role, ok := sess.Values[keyRole].(string); ok {
		user.Role = role
	}

	return user, nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		return nil
	}

	sess.Values = make(map[interface{}]interface{})
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
