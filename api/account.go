package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/taskbridge-api/store"
)

// accountDetail is the API to query the signed in identity
func (s *Server) accountDetail(c *gin.Context) {
	a, err := s.store.GetAccountByEmail(c.GetString("requester"))
	if err == store.ErrAccountNotFound {
		abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a.Identity(),
	})
}
