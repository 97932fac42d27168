package favor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

var transitionTime = time.Date(2020, 5, 1, 10, 0, 0, 0, time.UTC)

func openFavor() schema.Favor {
	return schema.Favor{
		Title:       "Car broke down",
		Description: "My car stopped working on Main Street. Need urgent help!",
		Status:      schema.FavorOpen,
		PostedBy:    "a@x.com",
	}
}

func TestValidateDraft(t *testing.T) {
	assert.NoError(t, ValidateDraft("Car broke down", "Need help"))
	assert.Equal(t, ErrEmptyTitle, ValidateDraft("", "Need help"))
	assert.Equal(t, ErrEmptyTitle, ValidateDraft("   ", "Need help"))
	assert.Equal(t, ErrEmptyDescription, ValidateDraft("Car broke down", ""))
	assert.Equal(t, ErrEmptyTitle, ValidateDraft("", ""))
}

func TestAcceptOpenFavor(t *testing.T) {
	f, err := Transition(openFavor(), AcceptBy("b@x.com"), transitionTime)
	assert.NoError(t, err)
	assert.Equal(t, schema.FavorInProgress, f.Status)
	assert.Equal(t, "b@x.com", f.AcceptedBy)
	assert.Equal(t, transitionTime, *f.AcceptedAt)
	assert.Equal(t, State{Status: schema.FavorInProgress, Acceptor: "b@x.com"}, StateOf(f))
}

func TestCompleteAcceptedFavor(t *testing.T) {
	f, err := Transition(openFavor(), AcceptBy("b@x.com"), transitionTime)
	assert.NoError(t, err)

	f, err = Transition(f, CompleteBy("a@x.com"), transitionTime.Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, schema.FavorCompleted, f.Status)
	assert.Equal(t, "b@x.com", f.AcceptedBy)
	assert.Equal(t, transitionTime.Add(time.Hour), *f.CompletedAt)
}

func TestIllegalTransitions(t *testing.T) {
	inProgress := openFavor()
	inProgress.Status = schema.FavorInProgress
	inProgress.AcceptedBy = "b@x.com"

	completed := inProgress
	completed.Status = schema.FavorCompleted

	cases := []struct {
		name   string
		favor  schema.Favor
		action Action
		err    error
	}{
		{"double accept", inProgress, AcceptBy("c@x.com"), ErrAlreadyAccepted},
		{"accept completed", completed, AcceptBy("c@x.com"), ErrAlreadyCompleted},
		{"self accept", openFavor(), AcceptBy("a@x.com"), ErrSelfAccept},
		{"anonymous accept", openFavor(), AcceptBy(""), ErrAnonymousActor},
		{"sentinel accept", openFavor(), AcceptBy(schema.AnonymousPoster), ErrAnonymousActor},
		{"complete open", openFavor(), CompleteBy("a@x.com"), ErrNotInProgress},
		{"complete twice", completed, CompleteBy("a@x.com"), ErrAlreadyCompleted},
		{"complete by acceptor", inProgress, CompleteBy("b@x.com"), ErrNotPoster},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Transition(c.favor, c.action, transitionTime)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, c.err), "unexpected error: %s", err)

			var te *TransitionError
			assert.True(t, errors.As(err, &te))
			assert.Equal(t, c.favor.Status, te.From)
			assert.Equal(t, c.action.Kind, te.Action)

			assert.Equal(t, c.favor, f, "favor must stay unchanged")
		})
	}
}

func TestUnknownAction(t *testing.T) {
	_, err := Transition(openFavor(), Action{Kind: "delete", Actor: "b@x.com"}, transitionTime)
	assert.EqualError(t, err, `unknown favor action: "delete"`)
}

func TestAvailableActions(t *testing.T) {
	open := openFavor()
	inProgress := open
	inProgress.Status = schema.FavorInProgress
	inProgress.AcceptedBy = "b@x.com"
	completed := inProgress
	completed.Status = schema.FavorCompleted

	assert.Equal(t, []ActionKind{Accept}, AvailableActions(open, "b@x.com"))
	assert.Empty(t, AvailableActions(open, "a@x.com"))
	assert.Empty(t, AvailableActions(open, ""))

	assert.Equal(t, []ActionKind{Complete}, AvailableActions(inProgress, "a@x.com"))
	assert.Empty(t, AvailableActions(inProgress, "b@x.com"))
	assert.Empty(t, AvailableActions(inProgress, "c@x.com"))

	assert.Empty(t, AvailableActions(completed, "a@x.com"))
	assert.Empty(t, AvailableActions(completed, "b@x.com"))
}
