package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/taskbridge-api/geo"
	"github.com/bitmark-inc/taskbridge-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.TaskBridgeCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// whether favors may be posted without signing in
	allowAnonymous bool

	// resolves the address of a favor location, optional
	resolver geo.Resolver
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	jwtKey *rsa.PrivateKey) *Server {
	database := viper.GetString("mongo.database")

	return &Server{
		store:          store.NewTaskBridgeStore(ormDB),
		mongoStore:     store.NewMongoStore(mongoClient, database),
		jwtPrivateKey:  jwtKey,
		allowAnonymous: viper.GetBool("favor.allow_anonymous"),
		resolver:       newResolver(mongoClient, database),
	}
}

// newResolver looks up addresses from earlier favors first and asks google
// maps only when a key is configured
func newResolver(mongoClient *mongo.Client, database string) geo.Resolver {
	cache := geo.NewMongodbResolver(mongoClient, database)

	key := viper.GetString("geo.key")
	if key == "" {
		return cache
	}

	mapClient, err := maps.NewClient(maps.WithAPIKey(key))
	if err != nil {
		log.WithError(err).Error("init google map client")
		return cache
	}

	return geo.NewMultipleResolver(cache, geo.NewGeocodingResolver(mapClient, viper.GetString("geo.language")))
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(ginrus("API"))
	apiRoute.Use(corsMiddleware(viper.GetStringSlice("server.cors.origins")))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.clientVersionGateway())

	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/accounts", s.accountRegister)

	// a token is optional from here on, but it has to be valid when given
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	accountRoute.Use(s.requireAuthentication())
	{
		accountRoute.GET("/me", s.accountDetail)
	}

	favorRoute := apiRoute.Group("/favors")
	{
		favorRoute.GET("", s.listFavors)
		favorRoute.GET("/:favorID", s.getFavor)
		favorRoute.POST("", s.postFavor)
		favorRoute.POST("/:favorID/accept", s.requireAuthentication(), s.acceptFavor)
		favorRoute.POST("/:favorID/complete", s.requireAuthentication(), s.completeFavor)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Client-Type", "Client-Version", "Geo-Position"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}

	return cors.New(config)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version":         viper.GetString("server.version"),
				"allow_anonymous": s.allowAnonymous,
			},
			"clients":        viper.GetStringMap("clients"),
			"system_version": "TaskBridge 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
