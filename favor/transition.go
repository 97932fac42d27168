package favor

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

var (
	ErrAnonymousActor   = fmt.Errorf("an authenticated identity is required")
	ErrSelfAccept       = fmt.Errorf("the poster cannot accept their own favor")
	ErrAlreadyAccepted  = fmt.Errorf("the favor has already been accepted")
	ErrNotInProgress    = fmt.Errorf("the favor has not been accepted yet")
	ErrAlreadyCompleted = fmt.Errorf("the favor has already been completed")
	ErrNotPoster        = fmt.Errorf("only the poster can complete the favor")
	ErrUnknownStatus    = fmt.Errorf("unknown favor status")
)

// State is the tagged form of a favor status. Acceptor is only meaningful
// for the in-progress and completed states.
type State struct {
	Status   schema.FavorStatus
	Acceptor string
}

// StateOf extracts the state variant of a favor
func StateOf(f schema.Favor) State {
	switch f.Status {
	case schema.FavorOpen:
		return State{Status: schema.FavorOpen}
	default:
		return State{Status: f.Status, Acceptor: f.AcceptedBy}
	}
}

type ActionKind string

const (
	Accept   ActionKind = "accept"
	Complete ActionKind = "complete"
)

// Action is a viewer triggered request to move a favor forward
type Action struct {
	Kind  ActionKind
	Actor string
}

// AcceptBy builds an accept action for the given identity
func AcceptBy(actor string) Action {
	return Action{Kind: Accept, Actor: actor}
}

// CompleteBy builds a complete action for the given identity
func CompleteBy(actor string) Action {
	return Action{Kind: Complete, Actor: actor}
}

// TransitionError reports an action which is not allowed from the current state
type TransitionError struct {
	From   schema.FavorStatus
	Action ActionKind
	Err    error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a favor in state %s: %s", e.Action, e.From, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// Transition applies an action to a favor and returns the updated copy.
// Only open -> in_progress -> completed is valid.
func Transition(f schema.Favor, a Action, now time.Time) (schema.Favor, error) {
	reject := func(err error) (schema.Favor, error) {
		return f, &TransitionError{From: f.Status, Action: a.Kind, Err: err}
	}

	if a.Actor == "" || a.Actor == schema.AnonymousPoster {
		return reject(ErrAnonymousActor)
	}

	state := StateOf(f)

	switch a.Kind {
	case Accept:
		switch state.Status {
		case schema.FavorOpen:
		case schema.FavorInProgress:
			return reject(ErrAlreadyAccepted)
		case schema.FavorCompleted:
			return reject(ErrAlreadyCompleted)
		default:
			return reject(ErrUnknownStatus)
		}

		if a.Actor == f.PostedBy {
			return reject(ErrSelfAccept)
		}

		t := now.UTC()
		f.Status = schema.FavorInProgress
		f.AcceptedBy = a.Actor
		f.AcceptedAt = &t
		return f, nil

	case Complete:
		switch state.Status {
		case schema.FavorInProgress:
		case schema.FavorOpen:
			return reject(ErrNotInProgress)
		case schema.FavorCompleted:
			return reject(ErrAlreadyCompleted)
		default:
			return reject(ErrUnknownStatus)
		}

		if a.Actor != f.PostedBy {
			return reject(ErrNotPoster)
		}

		t := now.UTC()
		f.Status = schema.FavorCompleted
		f.CompletedAt = &t
		return f, nil
	}

	return f, fmt.Errorf("unknown favor action: %q", a.Kind)
}

// AvailableActions lists the actions a viewer may take on a favor. An empty
// viewer means nobody is signed in.
func AvailableActions(f schema.Favor, viewer string) []ActionKind {
	if viewer == "" || viewer == schema.AnonymousPoster {
		return nil
	}

	switch f.Status {
	case schema.FavorOpen:
		if viewer != f.PostedBy {
			return []ActionKind{Accept}
		}
	case schema.FavorInProgress:
		if viewer == f.PostedBy {
			return []ActionKind{Complete}
		}
	}
	return nil
}
