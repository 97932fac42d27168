package client

import (
	"context"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

type authSession interface {
	SignUp(ctx context.Context, email, password string) (*schema.Identity, error)
	SignIn(ctx context.Context, email, password string) (*schema.Identity, error)
}

// LoginFlow is the entry screen. It reports the outcome of signing up or in
// and leaves navigation to whoever listens for identity changes.
type LoginFlow struct {
	session  authSession
	notifier Notifier
}

func NewLoginFlow(session authSession, notifier Notifier) *LoginFlow {
	return &LoginFlow{
		session:  session,
		notifier: notifier,
	}
}

func (l *LoginFlow) SignUp(ctx context.Context, email, password string) (*schema.Identity, error) {
	id, err := l.session.SignUp(ctx, email, password)
	if err != nil {
		l.notifier.Error("Sign up failed", err)
		return nil, err
	}

	l.notifier.Info("Success", MessageRegistered)
	return id, nil
}

func (l *LoginFlow) SignIn(ctx context.Context, email, password string) (*schema.Identity, error) {
	id, err := l.session.SignIn(ctx, email, password)
	if err != nil {
		l.notifier.Error("Sign in failed", err)
		return nil, err
	}

	l.notifier.Info("Success", MessageSignedIn)
	return id, nil
}
