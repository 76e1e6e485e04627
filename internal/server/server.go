package server

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"outreach/internal/config"
	"outreach/internal/middleware"
	"outreach/internal/version"
	"outreach/pkg/storage"
)

// Server represents the HTTP server
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	router   *gin.Engine
	mongo    *mongo.Client
	services *Services
}

// New creates a new server instance
func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	mongoClient, err := Connect(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	blobs := storage.NewBlobStore(cfg.Storage, log)
	repos := InitRepositories(db)
	services := InitServices(cfg, log, repos, blobs)
	handlers := InitHandlers(services)

	router := setupRouter(cfg, handlers, services, blobs)

	return &Server{
		cfg:      cfg,
		log:      log,
		router:   router,
		mongo:    mongoClient,
		services: services,
	}, nil
}

// Connect dials MongoDB with exponential backoff so a slow database start
// does not kill the process.
func Connect(cfg *config.Config, log *zap.Logger) (*mongo.Client, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 2 * time.Minute

	var client *mongo.Client
	connect := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return err
		}
		if err := c.Ping(ctx, nil); err != nil {
			return err
		}
		client = c
		return nil
	}

	notify := func(err error, next time.Duration) {
		log.Warn("MongoDB not reachable, retrying", zap.Error(err), zap.Duration("nextAttemptIn", next))
	}

	if err := backoff.RetryNotify(connect, bo, notify); err != nil {
		return nil, err
	}
	return client, nil
}

// Close disconnects the MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	s.log.Info("server listening",
		zap.String("address", s.cfg.Server.Address()),
		zap.String("version", version.Version))
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(cfg *config.Config, h *Handlers, s *Services, blobs *storage.BlobStore) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Public objects from the blob store, only when storage is configured.
	if cfg.Storage.Configured() {
		r.Static("/"+cfg.Storage.Bucket, blobs.BucketDir())
	}

	r.GET("/healthz", h.Health)

	api := r.Group("/api")

	// Public routes
	api.GET("/events", h.Event.ListPublic)
	api.POST("/newsletter", h.Newsletter.Signup)
	api.POST("/upload", h.Upload.Public)

	// Admin routes. Only the routes below carry bearer enforcement; the
	// rest validate credentials in the handler or not at all.
	admin := api.Group("/admin")

	admin.POST("/auth/login", h.Auth.Login)
	admin.GET("/auth/check", middleware.RequireAuth(s.Auth), h.Auth.Check)

	admin.GET("/events/:id/content", h.Event.GetContent)
	admin.PATCH("/events/:id/content", h.Event.UpdateContent)
	admin.POST("/events/:id/content/upload", h.Event.UploadContent)

	admin.GET("/requests", h.Request.List)
	admin.PATCH("/requests", h.Request.Update)
	admin.POST("/requests", h.Request.Create)

	admin.GET("/stats", h.Stats.Get)

	admin.GET("/suggestions", h.Suggestion.List)
	admin.POST("/suggestions", h.Suggestion.Create)

	admin.POST("/upload", h.Upload.Admin)

	admin.GET("/users", h.User.List)
	admin.POST("/users/create", h.User.Create)
	admin.PATCH("/users/:id", h.User.Update)
	admin.POST("/users/subscribe-private-calendar", middleware.RequireAuth(s.Auth), h.User.SubscribePrivateCalendar)

	admin.GET("/mvp2", h.Action.List)
	admin.POST("/mvp2", h.Action.Record)

	return r
}

// Health reports liveness and build metadata.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok", "version": version.Get()})
}
