package client

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

// Profile is the viewer's own favors and the resulting trust tier
type Profile struct {
	Identity schema.Identity
	Posted   []schema.Favor
	Accepted []schema.Favor
	Tier     favor.TrustTier
}

type signOuter interface {
	SignOut() error
}

// ProfileFlow shows the favors a viewer posted and accepted
type ProfileFlow struct {
	repo      Repository
	session   signOuter
	notifier  Notifier
	navigator Navigator

	lock    sync.RWMutex
	profile *Profile
}

func NewProfileFlow(repo Repository, session signOuter, notifier Notifier, navigator Navigator) *ProfileFlow {
	return &ProfileFlow{
		repo:      repo,
		session:   session,
		notifier:  notifier,
		navigator: navigator,
	}
}

// Mount loads the profile of viewer. Without a viewer nothing is queried and
// the returned profile is nil.
func (p *ProfileFlow) Mount(ctx context.Context, viewer *schema.Identity) (*Profile, error) {
	if viewer == nil {
		p.set(nil)
		return nil, nil
	}

	profile := &Profile{Identity: *viewer}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		favors, err := p.repo.ListFavorsWhere(gctx, schema.FieldPostedBy, viewer.Email)
		profile.Posted = favors
		return err
	})
	g.Go(func() error {
		favors, err := p.repo.ListFavorsWhere(gctx, schema.FieldAcceptedBy, viewer.Email)
		profile.Accepted = favors
		return err
	})

	if err := g.Wait(); err != nil {
		p.notifier.Error("Failed to load profile", err)
		return nil, err
	}

	profile.Tier = favor.TierFor(len(profile.Posted), len(profile.Accepted))
	p.set(profile)
	return profile, nil
}

// Profile returns the last mounted profile. Nil renders the signed out placeholder.
func (p *ProfileFlow) Profile() *Profile {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.profile
}

// Logout signs out and goes back to the login screen
func (p *ProfileFlow) Logout() error {
	if err := p.session.SignOut(); err != nil {
		p.notifier.Error("Failed to sign out", err)
		return err
	}

	p.set(nil)
	p.navigator.Navigate(RouteLogin)
	return nil
}

func (p *ProfileFlow) set(profile *Profile) {
	p.lock.Lock()
	p.profile = profile
	p.lock.Unlock()
}
