package server

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/Aidin1998/creatorhub/api/responses"
	"github.com/Aidin1998/creatorhub/common/apiutil"
	"github.com/Aidin1998/creatorhub/internal/assets"
	"github.com/Aidin1998/creatorhub/internal/creators"
	"github.com/Aidin1998/creatorhub/internal/infrastructure/config"
	"github.com/Aidin1998/creatorhub/pkg/errors"
)

// Validator checks request bodies
type Validator interface {
	ValidateStruct(s interface{}) error
}

// HealthChecker reports whether the persistence layer is reachable
type HealthChecker func(ctx context.Context) error

// Server represents the HTTP server
type Server struct {
	logger      *zap.Logger
	cfg         *config.Config
	validator   Validator
	health      HealthChecker
	creatorsSvc creators.CreatorService
	assetsSvc   assets.AssetService
}

// NewServer creates a new HTTP server
func NewServer(
	logger *zap.Logger,
	cfg *config.Config,
	validator Validator,
	health HealthChecker,
	creatorsSvc creators.CreatorService,
	assetsSvc assets.AssetService,
) *Server {
	return &Server{
		logger:      logger,
		cfg:         cfg,
		validator:   validator,
		health:      health,
		creatorsSvc: creatorsSvc,
		assetsSvc:   assetsSvc,
	}
}

// Router creates a new HTTP router
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	router.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(s.logger, true))
	if s.cfg.Tracing.Enabled {
		router.Use(otelgin.Middleware(s.cfg.Tracing.ServiceName))
	}
	router.Use(cors.New(s.corsConfig()))
	router.Use(apiutil.TraceIDMiddleware())
	if s.cfg.Metrics.Enabled {
		router.Use(apiutil.MetricsMiddleware())
	}
	router.Use(apiutil.RequestTimeoutMiddleware(s.cfg.Server.HTTP.RequestTimeout))
	router.Use(apiutil.RFC7807ErrorMiddleware(s.logger))

	router.GET("/health", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		router.GET(s.cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	creator := router.Group("/creator")
	{
		creator.POST("/register", s.handleRegisterCreator)
		creator.GET("/register/:id", s.handleGetCreator)
		creator.PUT("/register/:id", s.handleUpdateCreator)
		creator.POST("/login", s.handleLoginCreator)

		creator.POST("/assets", s.handleCreateAsset)
		creator.GET("/assets", s.handleListAssets)
		creator.GET("/assets/:id", s.handleGetAsset)
		creator.GET("/assets-creator/:idCreator", s.handleListAssetsByCreator)
	}

	return router
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", apiutil.TraceIDHeader},
		ExposeHeaders: []string{apiutil.TraceIDHeader},
		MaxAge:        12 * time.Hour,
	}

	origins := s.cfg.CORS.AllowedOrigins
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.health != nil {
		if err := s.health(c.Request.Context()); err != nil {
			s.logger.Error("Health check failed", zap.Error(err))
			responses.ServiceUnavailable(c, "database unreachable")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindJSON decodes and validates the request body into req. On failure
// the error is attached to c and false is returned.
func (s *Server) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return false
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		_ = c.Error(err)
		return false
	}
	return true
}

// pathID parses the named path parameter as an unsigned integer id.
// Ids are limited to 63 bits, the range of the BIGINT columns.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 63)
	if err != nil {
		_ = c.Error(errors.Invalid.
			Explain("%s must be an unsigned integer", name).
			WithField("uint", name, "must be an unsigned integer"))
		return 0, false
	}
	return id, true
}
