package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

const (
	logPrefix      = "geo"
	defaultTimeout = 5 * time.Second
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
)

// Resolver fills in the human readable address of a location
type Resolver interface {
	Resolve(ctx context.Context, loc schema.Location) (schema.Location, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// GeocodingResolver reverse geocodes coordinates with google maps
type GeocodingResolver struct {
	client   *maps.Client
	language string
}

func NewGeocodingResolver(client *maps.Client, language string) *GeocodingResolver {
	if language == "" {
		language = "en"
	}
	return &GeocodingResolver{
		client:   client,
		language: language,
	}
}

func (g *GeocodingResolver) Resolve(ctx context.Context, loc schema.Location) (schema.Location, error) {
	if loc.Address != "" {
		return loc, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Language: g.language,
	})
	if nil != err {
		return loc, err
	}

	if len(geos) == 0 {
		return loc, ErrNoGeoInfoFound
	}

	var neighborhood, locality string
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 {
			switch a.Types[0] {
			case "neighborhood":
				neighborhood = a.LongName
			case "locality":
				locality = a.LongName
			}
		}
	}

	loc.Address = geos[0].FormattedAddress
	loc.Neighborhood = neighborhood
	if loc.Neighborhood == "" {
		loc.Neighborhood = locality
	}

	return loc, nil
}

// MongodbResolver reuses the address of an earlier favor posted at the same spot
type MongodbResolver struct {
	client   *mongo.Client
	database string
}

func NewMongodbResolver(client *mongo.Client, database string) *MongodbResolver {
	return &MongodbResolver{
		client:   client,
		database: database,
	}
}

func (g *MongodbResolver) Resolve(ctx context.Context, loc schema.Location) (schema.Location, error) {
	if loc.Address != "" {
		return loc, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f schema.Favor
	if err := g.client.Database(g.database).Collection(schema.FavorCollection).FindOne(ctx, bson.M{
		"location.latitude":  loc.Latitude,
		"location.longitude": loc.Longitude,
		"location.address":   bson.M{"$exists": true, "$ne": ""},
	}, options.FindOne().SetProjection(bson.M{
		"location": 1,
	})).Decode(&f); err != nil {
		if err == mongo.ErrNoDocuments {
			return loc, ErrNoGeoInfoFound
		}
		return loc, err
	}

	if f.Location == nil {
		return loc, ErrNoGeoInfoFound
	}

	loc.Address = f.Location.Address
	loc.Neighborhood = f.Location.Neighborhood
	return loc, nil
}

// MultipleResolver returns the first successful answer of its resolvers
type MultipleResolver struct {
	resolvers []Resolver
}

func NewMultipleResolver(resolvers ...Resolver) *MultipleResolver {
	return &MultipleResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleResolver) Resolve(ctx context.Context, loc schema.Location) (schema.Location, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.Resolve(ctx, loc)
		if err != nil {
			log.WithField("prefix", logPrefix).WithError(err).Debug("resolver failed, try next")
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return loc, NewMultipleResolverErrors(errors)
}
