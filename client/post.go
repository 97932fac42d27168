package client

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/location"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

// PostFavorFlow collects a new favor and hands off to the feed once it is saved
type PostFavorFlow struct {
	repo           Repository
	locator        location.Provider
	notifier       Notifier
	navigator      Navigator
	allowAnonymous bool

	lock        sync.Mutex
	title       string
	description string
	location    *schema.Location
}

func NewPostFavorFlow(repo Repository, locator location.Provider, notifier Notifier, navigator Navigator, allowAnonymous bool) *PostFavorFlow {
	return &PostFavorFlow{
		repo:           repo,
		locator:        locator,
		notifier:       notifier,
		navigator:      navigator,
		allowAnonymous: allowAnonymous,
	}
}

// Enter makes a single attempt to read the device location. A failure is
// reported and the favor is posted without one.
func (p *PostFavorFlow) Enter(ctx context.Context) {
	if p.locator == nil {
		return
	}

	loc, err := p.locator.CurrentCoordinates(ctx)
	if err != nil {
		log.WithField("prefix", "post_favor").WithError(err).Info("continue without location")
		p.notifier.Error("Location unavailable", err)
		return
	}

	p.lock.Lock()
	p.location = &loc
	p.lock.Unlock()
}

// SetDraft updates the input fields
func (p *PostFavorFlow) SetDraft(title, description string) {
	p.lock.Lock()
	p.title = title
	p.description = description
	p.lock.Unlock()
}

// Draft returns the current input fields
func (p *PostFavorFlow) Draft() (string, string) {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.title, p.description
}

// Location returns the coordinates found by Enter, if any
func (p *PostFavorFlow) Location() *schema.Location {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

// Submit saves the draft. Inputs are cleared only when the favor is created.
func (p *PostFavorFlow) Submit(ctx context.Context, viewer *schema.Identity) (*schema.Favor, error) {
	title, description := p.Draft()

	if err := favor.ValidateDraft(title, description); err != nil {
		p.notifier.Error("Missing fields", err)
		return nil, err
	}

	if viewer == nil && !p.allowAnonymous {
		p.notifier.Error("Sign in required", ErrAnonymousDisabled)
		return nil, ErrAnonymousDisabled
	}

	f, err := p.repo.CreateFavor(ctx, title, description, p.Location())
	if err != nil {
		p.notifier.Error("Failed to post favor", err)
		return nil, err
	}

	p.SetDraft("", "")
	p.notifier.Info("Success", MessageFavorPosted)
	p.navigator.Navigate(RouteFeed)
	return f, nil
}
