package client

import (
	"errors"
	"fmt"

	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/location"
)

var (
	ErrEmptyCredentials     = fmt.Errorf("email and password are required")
	ErrMalformedCredentials = fmt.Errorf("a valid email and a password of at least 6 characters are required")
	ErrEmailTaken           = fmt.Errorf("this email is already registered")
	ErrWrongCredentials     = fmt.Errorf("wrong email or password")
	ErrNotAuthenticated     = fmt.Errorf("you need to sign in first")
	ErrAnonymousDisabled    = fmt.Errorf("posting favors without signing in is disabled")
	ErrUnsupportedClient    = fmt.Errorf("this client version is no longer supported")
	ErrInvalidParameters    = fmt.Errorf("some of the values are not valid")

	ErrFavorNotFound = fmt.Errorf("favor not found")
	ErrConflict      = fmt.Errorf("the favor was changed by someone else, refresh and try again")
	ErrNetwork       = fmt.Errorf("network failure")
	ErrService       = fmt.Errorf("service failure")
)

// Kind is the coarse category of a failure surfaced to the user
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuth
	KindRepo
	KindLocation
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindRepo:
		return "repository"
	case KindLocation:
		return "location"
	}
	return "unknown"
}

var errorKinds = []struct {
	err  error
	kind Kind
}{
	{favor.ErrEmptyTitle, KindValidation},
	{favor.ErrEmptyDescription, KindValidation},
	{ErrInvalidParameters, KindValidation},

	{ErrEmptyCredentials, KindAuth},
	{ErrMalformedCredentials, KindAuth},
	{ErrEmailTaken, KindAuth},
	{ErrWrongCredentials, KindAuth},
	{ErrNotAuthenticated, KindAuth},
	{ErrAnonymousDisabled, KindAuth},
	{ErrUnsupportedClient, KindAuth},
	{favor.ErrAnonymousActor, KindAuth},
	{favor.ErrSelfAccept, KindAuth},
	{favor.ErrNotPoster, KindAuth},

	{favor.ErrAlreadyAccepted, KindRepo},
	{favor.ErrNotInProgress, KindRepo},
	{favor.ErrAlreadyCompleted, KindRepo},
	{favor.ErrUnknownStatus, KindRepo},
	{ErrFavorNotFound, KindRepo},
	{ErrConflict, KindRepo},
	{ErrNetwork, KindRepo},
	{ErrService, KindRepo},

	{location.ErrPermissionDenied, KindLocation},
	{location.ErrUnsupported, KindLocation},
	{location.ErrUnavailable, KindLocation},
}

// KindOf classifies an error returned by this package
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// APIError is an error object returned by the taskbridge api
type APIError struct {
	Status  int    `json:"-"`
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (status %d): %s", e.Code, e.Status, e.Message)
}

// Unwrap maps the api error code back to the error it was raised from
func (e *APIError) Unwrap() error {
	if err, ok := apiErrorCodes[e.Code]; ok {
		return err
	}
	return ErrService
}

// codes answered when the bearer token itself is not accepted
const (
	codeInvalidAuthorizationFormat = 1001
	codeInvalidToken               = 1003
	codeAuthenticationRequired     = 1104
)

// rejectsToken reports whether the api refused the token sent with the request
func (e *APIError) rejectsToken() bool {
	switch e.Code {
	case codeInvalidAuthorizationFormat, codeInvalidToken, codeAuthenticationRequired:
		return true
	}
	return false
}

var apiErrorCodes = map[int64]error{
	1001: ErrNotAuthenticated,
	1003: ErrNotAuthenticated,
	1006: ErrUnsupportedClient,
	1007: ErrUnsupportedClient,
	1010: ErrInvalidParameters,
	1011: ErrInvalidParameters,

	1100: ErrEmailTaken,
	1101: ErrWrongCredentials,
	1102: ErrWrongCredentials,
	1103: ErrMalformedCredentials,
	1104: ErrNotAuthenticated,

	1200: ErrFavorNotFound,
	1201: favor.ErrEmptyTitle,
	1202: favor.ErrEmptyDescription,
	1203: favor.ErrAlreadyAccepted,
	1204: favor.ErrNotInProgress,
	1205: favor.ErrAlreadyCompleted,
	1206: favor.ErrSelfAccept,
	1207: favor.ErrNotPoster,
	1208: ErrConflict,
	1209: ErrAnonymousDisabled,
	1210: ErrInvalidParameters,
}
