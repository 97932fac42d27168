package client

import (
	"context"
	"net/mail"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

const minimumPasswordLength = 6

// ValidateCredentials runs the same checks as the api before any network call
func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrEmptyCredentials
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrMalformedCredentials
	}

	if len(password) < minimumPasswordLength {
		return ErrMalformedCredentials
	}
	return nil
}

// Session holds the signed in identity and its token. It is the single
// place the current identity is read from.
type Session struct {
	auth  Authenticator
	store TokenStore

	lock     sync.RWMutex
	token    string
	identity *schema.Identity

	listenerLock sync.Mutex
	listeners    map[int]func(*schema.Identity)
	nextListener int
}

// NewSession returns a session which restores a persisted grant from store.
// An expired grant is removed instead. A nil store keeps the session in
// memory only.
func NewSession(auth Authenticator, store TokenStore) (*Session, error) {
	s := &Session{
		auth:      auth,
		store:     store,
		listeners: make(map[int]func(*schema.Identity)),
	}

	if store == nil {
		return s, nil
	}

	g, err := store.Load()
	if err != nil {
		return nil, err
	}
	if g == nil || g.Token == "" {
		return s, nil
	}

	if g.Expired(time.Now()) {
		log.WithField("prefix", "session").WithField("email", g.Identity.Email).Info("stored session expired")
		if err := store.Clear(); err != nil {
			return nil, err
		}
		return s, nil
	}

	id := g.Identity
	s.token = g.Token
	s.identity = &id
	return s, nil
}

func (s *Session) SignUp(ctx context.Context, email, password string) (*schema.Identity, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	g, err := s.auth.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(g)
}

func (s *Session) SignIn(ctx context.Context, email, password string) (*schema.Identity, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	g, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(g)
}

// SignOut drops the token. Tokens are stateless on the api side so there
// is no remote call.
func (s *Session) SignOut() error {
	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			return err
		}
	}

	s.lock.Lock()
	s.token = ""
	s.identity = nil
	s.lock.Unlock()

	log.WithField("prefix", "session").Info("signed out")
	s.broadcast()
	return nil
}

func (s *Session) establish(g *Grant) (*schema.Identity, error) {
	if g.ExpireAt.IsZero() && g.ExpireIn > 0 {
		g.ExpireAt = time.Now().Add(time.Duration(g.ExpireIn) * time.Second).UTC()
	}

	if s.store != nil {
		if err := s.store.Save(*g); err != nil {
			return nil, err
		}
	}

	id := g.Identity

	s.lock.Lock()
	s.token = g.Token
	s.identity = &id
	s.lock.Unlock()

	log.WithField("prefix", "session").WithField("email", id.Email).Info("signed in")
	s.broadcast()

	return &id, nil
}

// Invalidate implements TokenInvalidator. The session is signed out when
// token is still the current one.
func (s *Session) Invalidate(token string) {
	s.lock.Lock()
	if token == "" || s.token != token {
		s.lock.Unlock()
		return
	}
	s.token = ""
	s.identity = nil
	s.lock.Unlock()

	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			log.WithField("prefix", "session").WithError(err).Error("clear stored session")
		}
	}

	log.WithField("prefix", "session").Warn("session token refused, signed out")
	s.broadcast()
}

// CurrentIdentity returns a copy of the signed in identity, or nil
func (s *Session) CurrentIdentity() *schema.Identity {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Token implements TokenSource
func (s *Session) Token() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.token
}

// OnIdentityChange registers cb for every change of the signed in identity.
// cb is called once right away with the current identity. The returned
// function removes the subscription.
func (s *Session) OnIdentityChange(cb func(*schema.Identity)) func() {
	s.listenerLock.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = cb
	s.listenerLock.Unlock()

	cb(s.CurrentIdentity())

	return func() {
		s.listenerLock.Lock()
		delete(s.listeners, id)
		s.listenerLock.Unlock()
	}
}

func (s *Session) broadcast() {
	s.listenerLock.Lock()
	callbacks := make([]func(*schema.Identity), 0, len(s.listeners))
	for _, cb := range s.listeners {
		callbacks = append(callbacks, cb)
	}
	s.listenerLock.Unlock()

	for _, cb := range callbacks {
		cb(s.CurrentIdentity())
	}
}
