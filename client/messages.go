package client

import (
	"errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/location"
	"github.com/bitmark-inc/taskbridge-api/utils"
)

var messages = []struct {
	err     error
	message *i18n.Message
}{
	{favor.ErrEmptyTitle, &i18n.Message{ID: "error.empty_title", Other: "Please enter a title."}},
	{favor.ErrEmptyDescription, &i18n.Message{ID: "error.empty_description", Other: "Please enter a description."}},
	{ErrEmptyCredentials, &i18n.Message{ID: "error.empty_credentials", Other: "Please enter your email and password."}},
	{ErrMalformedCredentials, &i18n.Message{ID: "error.malformed_credentials", Other: "Enter a valid email and a password of at least 6 characters."}},
	{ErrEmailTaken, &i18n.Message{ID: "error.email_taken", Other: "This email is already registered."}},
	{ErrWrongCredentials, &i18n.Message{ID: "error.wrong_credentials", Other: "Wrong email or password."}},
	{ErrNotAuthenticated, &i18n.Message{ID: "error.not_authenticated", Other: "Please sign in first."}},
	{favor.ErrAnonymousActor, &i18n.Message{ID: "error.not_authenticated", Other: "Please sign in first."}},
	{ErrAnonymousDisabled, &i18n.Message{ID: "error.anonymous_disabled", Other: "Please sign in to post a favor."}},
	{ErrUnsupportedClient, &i18n.Message{ID: "error.unsupported_client", Other: "Please update the app to continue."}},
	{ErrInvalidParameters, &i18n.Message{ID: "error.invalid_parameters", Other: "Some of the values are not valid."}},
	{favor.ErrSelfAccept, &i18n.Message{ID: "error.self_accept", Other: "You cannot accept your own favor."}},
	{favor.ErrNotPoster, &i18n.Message{ID: "error.not_poster", Other: "Only the person who posted this favor can complete it."}},
	{favor.ErrAlreadyAccepted, &i18n.Message{ID: "error.already_accepted", Other: "Someone already accepted this favor."}},
	{favor.ErrNotInProgress, &i18n.Message{ID: "error.not_in_progress", Other: "This favor has not been accepted yet."}},
	{favor.ErrAlreadyCompleted, &i18n.Message{ID: "error.already_completed", Other: "This favor is already completed."}},
	{ErrConflict, &i18n.Message{ID: "error.conflict", Other: "This favor just changed. Refresh and try again."}},
	{ErrFavorNotFound, &i18n.Message{ID: "error.favor_not_found", Other: "This favor no longer exists."}},
	{ErrNetwork, &i18n.Message{ID: "error.network", Other: "Unable to reach the server. Check your connection."}},
	{location.ErrPermissionDenied, &i18n.Message{ID: "error.location_denied", Other: "Permission to access location was denied."}},
	{location.ErrUnsupported, &i18n.Message{ID: "error.location_unsupported", Other: "Location is not supported on this device."}},
	{location.ErrUnavailable, &i18n.Message{ID: "error.location_unavailable", Other: "Unable to fetch location."}},
}

// Messages of successful actions
var (
	MessageRegistered  = &i18n.Message{ID: "info.registered", Other: "User registered!"}
	MessageSignedIn    = &i18n.Message{ID: "info.signed_in", Other: "Logged in!"}
	MessageFavorPosted = &i18n.Message{ID: "info.favor_posted", Other: "Favor posted!"}
)

var unknownMessage = &i18n.Message{ID: "error.unknown", Other: "Something went wrong. Please try again."}

// MessageFor returns the user visible text of err in lang
func MessageFor(err error, lang string) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return utils.Localize(lang, m.message)
		}
	}
	return utils.Localize(lang, unknownMessage)
}
