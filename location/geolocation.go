package location

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

const (
	logPrefix      = "location"
	defaultTimeout = 5 * time.Second
)

// GeolocationProvider estimates coordinates through the google maps
// geolocation api from the caller's network
type GeolocationProvider struct {
	client  *maps.Client
	granted bool
}

// NewGeolocationProvider returns a provider backed by google maps. Without an
// api key the provider reports ErrUnsupported on every call.
func NewGeolocationProvider(apiKey string, granted bool, options ...maps.ClientOption) *GeolocationProvider {
	p := &GeolocationProvider{granted: granted}
	if apiKey == "" {
		return p
	}

	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, options...)...)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")
		return p
	}

	p.client = client
	return p
}

func (p *GeolocationProvider) CurrentCoordinates(ctx context.Context) (schema.Location, error) {
	if !p.granted {
		return schema.Location{}, ErrPermissionDenied
	}

	if p.client == nil {
		return schema.Location{}, ErrUnsupported
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := p.client.Geolocate(ctx, &maps.GeolocationRequest{
		ConsiderIP: true,
	})
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Warn("geolocate")
		return schema.Location{}, ErrUnavailable
	}

	loc := schema.Location{
		Latitude:  result.Location.Lat,
		Longitude: result.Location.Lng,
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"lat":      loc.Latitude,
		"lng":      loc.Longitude,
		"accuracy": result.Accuracy,
	}).Debug("location set")

	return loc, nil
}
