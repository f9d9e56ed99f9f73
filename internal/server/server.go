// Package server exposes the report service over HTTP: upload one bureau
// XML report, then list, fetch, search and delete the stored documents.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crednorm/experian-report/internal/config"
	"crednorm/experian-report/internal/store"
)

// Server wires the HTTP API around the transformation core and the store.
type Server struct {
	cfg     *config.Config
	reports store.ReportStore
	log     *logrus.Logger
}

// New creates a Server. The caller owns the store connection.
func New(cfg *config.Config, reports store.ReportStore, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	return &Server{
		cfg:     cfg,
		reports: reports,
		log:     logger,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(s.cfg.Server.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.cfg.Server.CORSOrigins
	}
	corsConfig.AddAllowMethods("GET", "POST", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.MaxMultipartMemory = s.cfg.Server.MaxUploadBytes

	api := r.Group("/api")
	api.POST("/upload", s.handleUpload)
	api.GET("/reports", s.handleList)
	api.GET("/reports/:id", s.handleGet)
	api.DELETE("/reports/:id", s.handleDelete)
	// Search lives outside /reports because the router does not allow a
	// static segment next to the :id parameter.
	api.GET("/search/:query", s.handleSearch)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

// Run starts serving on the configured address and blocks.
func (s *Server) Run() error {
	s.log.WithField("address", s.cfg.Server.Address).Info("Starting report service")
	return s.Router().Run(s.cfg.Server.Address)
}
