package api

import (
	"errors"
	"net/http"

	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1006: "invalid value of client version",
		1007: "API for this client version has been discontinued",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrEmailTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),
		1102: "wrong email or password",
		1103: "a valid email and a password of at least 6 characters are required",
		1104: "authentication required",

		1200: store.ErrFavorNotFound.Error(),
		1201: favor.ErrEmptyTitle.Error(),
		1202: favor.ErrEmptyDescription.Error(),
		1203: favor.ErrAlreadyAccepted.Error(),
		1204: favor.ErrNotInProgress.Error(),
		1205: favor.ErrAlreadyCompleted.Error(),
		1206: favor.ErrSelfAccept.Error(),
		1207: favor.ErrNotPoster.Error(),
		1208: store.ErrFavorConflict.Error(),
		1209: "posting favors without signing in is disabled",
		1210: store.ErrUnsupportedField.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorInvalidClientVersion       = errorJSON(1006)
	errorUnsupportedClientVersion   = errorJSON(1007)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken             = errorJSON(1100)
	errorAccountNotFound        = errorJSON(1101)
	errorWrongCredentials       = errorJSON(1102)
	errorMalformedCredentials   = errorJSON(1103)
	errorAuthenticationRequired = errorJSON(1104)

	errorFavorNotFound            = errorJSON(1200)
	errorEmptyTitle               = errorJSON(1201)
	errorEmptyDescription         = errorJSON(1202)
	errorFavorAlreadyAccepted     = errorJSON(1203)
	errorFavorNotInProgress       = errorJSON(1204)
	errorFavorAlreadyCompleted    = errorJSON(1205)
	errorSelfAccept               = errorJSON(1206)
	errorNotPoster                = errorJSON(1207)
	errorFavorConflict            = errorJSON(1208)
	errorAnonymousPostingDisabled = errorJSON(1209)
	errorUnsupportedField         = errorJSON(1210)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// favorErrorResponse maps repository and transition errors to a status code
// and an error object
func favorErrorResponse(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, store.ErrFavorNotFound):
		return http.StatusNotFound, errorFavorNotFound
	case errors.Is(err, store.ErrFavorConflict):
		return http.StatusConflict, errorFavorConflict
	case errors.Is(err, store.ErrUnsupportedField):
		return http.StatusBadRequest, errorUnsupportedField
	case errors.Is(err, favor.ErrEmptyTitle):
		return http.StatusBadRequest, errorEmptyTitle
	case errors.Is(err, favor.ErrEmptyDescription):
		return http.StatusBadRequest, errorEmptyDescription
	case errors.Is(err, favor.ErrAnonymousActor):
		return http.StatusUnauthorized, errorAuthenticationRequired
	case errors.Is(err, favor.ErrAlreadyAccepted):
		return http.StatusConflict, errorFavorAlreadyAccepted
	case errors.Is(err, favor.ErrNotInProgress):
		return http.StatusConflict, errorFavorNotInProgress
	case errors.Is(err, favor.ErrAlreadyCompleted):
		return http.StatusConflict, errorFavorAlreadyCompleted
	case errors.Is(err, favor.ErrSelfAccept):
		return http.StatusForbidden, errorSelfAccept
	case errors.Is(err, favor.ErrNotPoster):
		return http.StatusForbidden, errorNotPoster
	}
	return http.StatusInternalServerError, errorInternalServer
}
