package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/taskbridge-api/client"
	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

func TestTerminalError(t *testing.T) {
	var out, errOut bytes.Buffer
	term := newTerminal(&out, &errOut, "en")

	term.Error("Failed to accept favor", favor.ErrSelfAccept)
	assert.Equal(t, "Failed to accept favor: You cannot accept your own favor.\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestTerminalInfo(t *testing.T) {
	var out, errOut bytes.Buffer
	term := newTerminal(&out, &errOut, "en")

	term.Info("Success", client.MessageFavorPosted)
	assert.Equal(t, "Success: Favor posted!\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestTerminalRenderFeed(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, &out, "en")

	id := primitive.NewObjectID()
	term.renderFeed([]client.FeedItem{{
		Favor: schema.Favor{
			ID:       id,
			Title:    "Car broke down",
			Status:   schema.FavorOpen,
			PostedBy: "a@x.com",
			Location: &schema.Location{Latitude: 1.5, Longitude: 2},
		},
		Actions: []favor.ActionKind{favor.Accept},
	}}, nil)

	s := out.String()
	assert.Contains(t, s, id.Hex())
	assert.Contains(t, s, "1.5;2")
	assert.Contains(t, s, "accept")
	assert.Contains(t, s, "Sign in to accept or complete favors.")
}

func TestTerminalRenderProfile(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, &out, "en")

	term.renderProfile(nil)
	assert.Contains(t, out.String(), "not signed in")

	out.Reset()
	term.renderProfile(&client.Profile{
		Identity: schema.Identity{Email: "a@x.com"},
		Posted:   []schema.Favor{{ID: primitive.NewObjectID(), Title: "Car broke down", Status: schema.FavorCompleted}},
		Tier:     favor.TierBronze,
	})
	assert.Contains(t, out.String(), "Trust badge: Bronze (1 favors)")
	assert.Contains(t, out.String(), "Posted (1)")
	assert.Contains(t, out.String(), "Accepted (0)")
}

func TestErrReported(t *testing.T) {
	err := errReported{client.ErrNetwork}
	assert.True(t, errors.Is(err, client.ErrNetwork))
}
