package client

import (
	"context"
	"sync"
	"time"

	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

// FeedItem is a favor together with what the viewer can do with it
type FeedItem struct {
	Favor   schema.Favor
	Actions []favor.ActionKind
}

// Can reports whether the action is offered to the viewer
func (i FeedItem) Can(kind favor.ActionKind) bool {
	for _, a := range i.Actions {
		if a == kind {
			return true
		}
	}
	return false
}

// FeedFlow is the list of every favor. It never patches its items locally,
// the whole list is reloaded after each change.
type FeedFlow struct {
	repo     Repository
	notifier Notifier

	lock  sync.RWMutex
	items []FeedItem
}

func NewFeedFlow(repo Repository, notifier Notifier) *FeedFlow {
	return &FeedFlow{
		repo:     repo,
		notifier: notifier,
	}
}

// Refresh reloads the feed for the viewer. A nil viewer sees no actions.
// On failure the previous items are kept.
func (f *FeedFlow) Refresh(ctx context.Context, viewer *schema.Identity) error {
	favors, err := f.repo.ListAllFavors(ctx)
	if err != nil {
		f.notifier.Error("Failed to load favors", err)
		return err
	}

	email := viewerEmail(viewer)
	items := make([]FeedItem, 0, len(favors))
	for _, fv := range favors {
		items = append(items, FeedItem{
			Favor:   fv,
			Actions: favor.AvailableActions(fv, email),
		})
	}

	f.lock.Lock()
	f.items = items
	f.lock.Unlock()
	return nil
}

// Focus is called whenever the feed becomes visible again
func (f *FeedFlow) Focus(ctx context.Context, viewer *schema.Identity) error {
	return f.Refresh(ctx, viewer)
}

// Items returns the favors loaded by the last successful refresh
func (f *FeedFlow) Items() []FeedItem {
	f.lock.RLock()
	defer f.lock.RUnlock()

	items := make([]FeedItem, len(f.items))
	copy(items, f.items)
	return items
}

// Accept claims an open favor for the viewer
func (f *FeedFlow) Accept(ctx context.Context, viewer *schema.Identity, id string) error {
	return f.mutate(ctx, viewer, favor.AcceptBy(viewerEmail(viewer)), id, "Failed to accept favor", f.repo.AcceptFavor)
}

// Complete closes a favor the viewer posted
func (f *FeedFlow) Complete(ctx context.Context, viewer *schema.Identity, id string) error {
	return f.mutate(ctx, viewer, favor.CompleteBy(viewerEmail(viewer)), id, "Failed to complete favor", f.repo.CompleteFavor)
}

func (f *FeedFlow) mutate(ctx context.Context, viewer *schema.Identity, action favor.Action, id, title string,
	call func(context.Context, string) (*schema.Favor, error)) error {
	if viewer == nil {
		f.notifier.Error(title, ErrNotAuthenticated)
		return ErrNotAuthenticated
	}

	// reject what is already known to be illegal without a round trip
	if item, ok := f.find(id); ok {
		if _, err := favor.Transition(item.Favor, action, time.Now()); err != nil {
			f.notifier.Error(title, err)
			return err
		}
	}

	if _, err := call(ctx, id); err != nil {
		f.notifier.Error(title, err)
		return err
	}

	return f.Refresh(ctx, viewer)
}

func (f *FeedFlow) find(id string) (FeedItem, bool) {
	f.lock.RLock()
	defer f.lock.RUnlock()

	for _, i := range f.items {
		if i.Favor.ID.Hex() == id {
			return i, true
		}
	}
	return FeedItem{}, false
}

func viewerEmail(viewer *schema.Identity) string {
	if viewer == nil {
		return ""
	}
	return viewer.Email
}
