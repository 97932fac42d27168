package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/taskbridge-api/location"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

// geoPosition reads the optional Geo-Position header. A malformed value is
// recorded on the context and otherwise ignored.
func geoPosition(c *gin.Context) *schema.Location {
	gp := c.GetHeader("Geo-Position")
	if gp == "" {
		return nil
	}

	loc, err := location.ParseGeoPosition(gp)
	if err != nil {
		c.Error(err)
		return nil
	}
	return &loc
}
