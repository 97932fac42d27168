package client

import "github.com/nicksnyder/go-i18n/v2/i18n"

// Routes of the app screens
const (
	RouteLogin     = "/login"
	RouteFeed      = "/favor"
	RoutePostFavor = "/postfavor"
	RouteProfile   = "/profile"
)

// Notifier surfaces flow results to the user
type Notifier interface {
	Error(title string, err error)
	Info(title string, message *i18n.Message)
}

// Navigator moves the app to another screen
type Navigator interface {
	Navigate(route string)
}
