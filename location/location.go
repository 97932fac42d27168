package location

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

var (
	ErrPermissionDenied = fmt.Errorf("permission to access location was denied")
	ErrUnsupported      = fmt.Errorf("location is not supported on this device")
	ErrUnavailable      = fmt.Errorf("unable to fetch location")

	ErrInvalidGeoPosition = fmt.Errorf("invalid geo-position value")
)

// Provider reads the current coordinates of the device. Callers treat any
// error as "no location" and carry on.
type Provider interface {
	CurrentCoordinates(ctx context.Context) (schema.Location, error)
}

// ParseGeoPosition parses a `latitude;longitude` pair
func ParseGeoPosition(geoPosition string) (schema.Location, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return schema.Location{}, ErrInvalidGeoPosition
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(positions[0]), 64)
	if err != nil {
		return schema.Location{}, ErrInvalidGeoPosition
	}

	long, err := strconv.ParseFloat(strings.TrimSpace(positions[1]), 64)
	if err != nil {
		return schema.Location{}, ErrInvalidGeoPosition
	}

	loc := schema.Location{Latitude: lat, Longitude: long}
	if !Valid(loc) {
		return schema.Location{}, ErrInvalidGeoPosition
	}

	return loc, nil
}

// Valid reports whether the coordinates are on the globe
func Valid(loc schema.Location) bool {
	return loc.Latitude >= -90 && loc.Latitude <= 90 &&
		loc.Longitude >= -180 && loc.Longitude <= 180
}

// FormatGeoPosition is the inverse of ParseGeoPosition
func FormatGeoPosition(loc schema.Location) string {
	return strconv.FormatFloat(loc.Latitude, 'f', -1, 64) + ";" + strconv.FormatFloat(loc.Longitude, 'f', -1, 64)
}

// StaticProvider always answers with the same coordinates
type StaticProvider struct {
	loc schema.Location
}

func NewStaticProvider(loc schema.Location) *StaticProvider {
	return &StaticProvider{loc: loc}
}

func (p *StaticProvider) CurrentCoordinates(ctx context.Context) (schema.Location, error) {
	return p.loc, nil
}

// DeniedProvider is used when the user refused to share location
type DeniedProvider struct{}

func (DeniedProvider) CurrentCoordinates(ctx context.Context) (schema.Location, error) {
	return schema.Location{}, ErrPermissionDenied
}
