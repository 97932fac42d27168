package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/taskbridge-api/schema"
)

func TestParseGeoPosition(t *testing.T) {
	loc, err := ParseGeoPosition("43.6532;-79.3832")
	assert.NoError(t, err)
	assert.Equal(t, schema.Location{Latitude: 43.6532, Longitude: -79.3832}, loc)

	loc, err = ParseGeoPosition(" 25.03 ; 121.56 ")
	assert.NoError(t, err)
	assert.Equal(t, schema.Location{Latitude: 25.03, Longitude: 121.56}, loc)

	for _, v := range []string{"", "43.6532", "43.6532;", "a;b", "91;0", "0;181", "1;2;3"} {
		_, err := ParseGeoPosition(v)
		assert.Equal(t, ErrInvalidGeoPosition, err, "value %q", v)
	}
}

func TestFormatGeoPosition(t *testing.T) {
	loc := schema.Location{Latitude: 43.6532, Longitude: -79.3832}
	assert.Equal(t, "43.6532;-79.3832", FormatGeoPosition(loc))

	parsed, err := ParseGeoPosition(FormatGeoPosition(loc))
	assert.NoError(t, err)
	assert.Equal(t, loc, parsed)
}

func TestStaticAndDeniedProvider(t *testing.T) {
	loc := schema.Location{Latitude: 1.23, Longitude: 4.56}
	actual, err := NewStaticProvider(loc).CurrentCoordinates(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, loc, actual)

	_, err = DeniedProvider{}.CurrentCoordinates(context.Background())
	assert.Equal(t, ErrPermissionDenied, err)
}

func TestGeolocationProvider(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location":{"lat":43.6532,"lng":-79.3832},"accuracy":120}`))
	}))
	defer ts.Close()

	p := NewGeolocationProvider("test", true, maps.WithBaseURL(ts.URL))
	loc, err := p.CurrentCoordinates(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, schema.Location{Latitude: 43.6532, Longitude: -79.3832}, loc)
}

func TestGeolocationProviderUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer ts.Close()

	p := NewGeolocationProvider("test", true, maps.WithBaseURL(ts.URL))
	_, err := p.CurrentCoordinates(context.Background())
	assert.Equal(t, ErrUnavailable, err)
}

func TestGeolocationProviderWithoutKeyOrPermission(t *testing.T) {
	_, err := NewGeolocationProvider("", true).CurrentCoordinates(context.Background())
	assert.Equal(t, ErrUnsupported, err)

	_, err = NewGeolocationProvider("test", false).CurrentCoordinates(context.Background())
	assert.Equal(t, ErrPermissionDenied, err)
}
