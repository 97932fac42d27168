package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/taskbridge-api/favor"
	"github.com/bitmark-inc/taskbridge-api/location"
	"github.com/bitmark-inc/taskbridge-api/schema"
)

// postFavor is the API for asking a favor from the neighborhood
func (s *Server) postFavor(c *gin.Context) {
	logger := log.WithField("api", "postFavor")
	poster := c.GetString("requester")

	if poster == "" {
		if !s.allowAnonymous {
			abortWithEncoding(c, http.StatusUnauthorized, errorAnonymousPostingDisabled)
			return
		}
		poster = schema.AnonymousPoster
	}

	var params struct {
		Title       string           `json:"title"`
		Description string           `json:"description"`
		Location    *schema.Location `json:"location"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorCannotParseRequest.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := favor.ValidateDraft(params.Title, params.Description); err != nil {
		code, obj := favorErrorResponse(err)
		abortWithEncoding(c, code, obj)
		return
	}

	if params.Location != nil && !location.Valid(*params.Location) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Location == nil {
		params.Location = geoPosition(c)
	}

	if params.Location != nil && s.resolver != nil {
		loc, err := s.resolver.Resolve(c.Request.Context(), *params.Location)
		if err != nil {
			logger.WithError(err).Warn("unable to resolve favor address")
		} else {
			params.Location = &loc
		}
	}

	f, err := s.mongoStore.CreateFavor(c.Request.Context(), params.Title, params.Description, params.Location, poster)
	if err != nil {
		code, obj := favorErrorResponse(err)
		abortWithEncoding(c, code, obj, err)
		return
	}

	logger.WithField("favor_id", f.ID.Hex()).Info("favor posted")
	c.JSON(http.StatusOK, gin.H{"result": f})
}

// listFavors is the API for the favor feed. It optionally filters by
// poster or acceptor.
func (s *Server) listFavors(c *gin.Context) {
	var params struct {
		PostedBy   string `form:"posted_by"`
		AcceptedBy string `form:"accepted_by"`
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var (
		favors []schema.Favor
		err    error
	)

	switch {
	case params.PostedBy != "" && params.AcceptedBy != "":
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	case params.PostedBy != "":
		favors, err = s.mongoStore.ListFavorsWhere(c.Request.Context(), schema.FieldPostedBy, params.PostedBy)
	case params.AcceptedBy != "":
		favors, err = s.mongoStore.ListFavorsWhere(c.Request.Context(), schema.FieldAcceptedBy, params.AcceptedBy)
	default:
		favors, err = s.mongoStore.ListFavors(c.Request.Context())
	}

	if err != nil {
		code, obj := favorErrorResponse(err)
		abortWithEncoding(c, code, obj, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": favors})
}

// getFavor is the API to query a single favor
func (s *Server) getFavor(c *gin.Context) {
	f, err := s.mongoStore.GetFavor(c.Request.Context(), c.Param("favorID"))
	if err != nil {
		code, obj := favorErrorResponse(err)
		abortWithEncoding(c, code, obj, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": f})
}

// acceptFavor is the API for claiming an open favor
func (s *Server) acceptFavor(c *gin.Context) {
	id := c.Param("favorID")
	requester := c.GetString("requester")

	f, err := s.mongoStore.AcceptFavor(c.Request.Context(), id, requester)
	if err != nil {
		code, obj := favorErrorResponse(err)
		abortWithEncoding(c, code, obj, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": f})
}

// completeFavor is the API for the poster to close an accepted favor
func (s *Server) completeFavor(c *gin.Context) {
	id := c.Param("favorID")
	requester := c.GetString("requester")

	f, err := s.mongoStore.CompleteFavor(c.Request.Context(), id, requester)
	if err != nil {
		code, obj := favorErrorResponse(err)
		abortWithEncoding(c, code, obj, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": f})
}
