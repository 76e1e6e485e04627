package server

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"outreach/internal/config"
	"outreach/internal/handler"
	"outreach/internal/repository"
	"outreach/internal/service"
	"outreach/pkg/storage"
)

// Repositories groups the per-collection accessors
type Repositories struct {
	Accounts    repository.IAccountRepository
	Users       repository.IUserRepository
	Events      repository.IEventRepository
	Requests    repository.IRequestRepository
	Suggestions repository.ISuggestionRepository
	Newsletter  repository.INewsletterRepository
	Actions     repository.IActionRepository
}

// InitRepositories constructs all repositories over the database handle
func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Accounts:    repository.NewAccountRepository(db),
		Users:       repository.NewUserRepository(db),
		Events:      repository.NewEventRepository(db),
		Requests:    repository.NewRequestRepository(db),
		Suggestions: repository.NewSuggestionRepository(db),
		Newsletter:  repository.NewNewsletterRepository(db),
		Actions:     repository.NewActionRepository(db),
	}
}

// Services groups the business logic layer
type Services struct {
	Auth        *service.AuthService
	Users       *service.UserService
	Events      *service.EventService
	Requests    *service.RequestService
	Suggestions *service.SuggestionService
	Newsletter  *service.NewsletterService
	Actions     *service.ActionService
	Stats       *service.StatsService
	Uploads     *service.UploadService
}

// InitServices constructs all services with their dependencies injected
func InitServices(cfg *config.Config, log *zap.Logger, repos *Repositories, blobs *storage.BlobStore) *Services {
	return &Services{
		Auth:        service.NewAuthService(cfg, log, repos.Accounts, repos.Users),
		Users:       service.NewUserService(log, repos.Accounts, repos.Users),
		Events:      service.NewEventService(log, repos.Events, blobs),
		Requests:    service.NewRequestService(log, repos.Requests),
		Suggestions: service.NewSuggestionService(log, repos.Suggestions),
		Newsletter:  service.NewNewsletterService(log, repos.Newsletter),
		Actions:     service.NewActionService(log, repos.Actions),
		Stats:       service.NewStatsService(log, repos.Requests, repos.Events, repos.Users, repos.Newsletter),
		Uploads:     service.NewUploadService(log, blobs),
	}
}

// Handlers groups the HTTP layer
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Event      *handler.EventHandler
	Request    *handler.RequestHandler
	Suggestion *handler.SuggestionHandler
	Stats      *handler.StatsHandler
	Newsletter *handler.NewsletterHandler
	Upload     *handler.UploadHandler
	Action     *handler.ActionHandler
}

// InitHandlers constructs all handlers over the services
func InitHandlers(s *Services) *Handlers {
	return &Handlers{
		Auth:       handler.NewAuthHandler(s.Auth),
		User:       handler.NewUserHandler(s.Users, s.Auth),
		Event:      handler.NewEventHandler(s.Events),
		Request:    handler.NewRequestHandler(s.Requests),
		Suggestion: handler.NewSuggestionHandler(s.Suggestions),
		Stats:      handler.NewStatsHandler(s.Stats),
		Newsletter: handler.NewNewsletterHandler(s.Newsletter),
		Upload:     handler.NewUploadHandler(s.Uploads),
		Action:     handler.NewActionHandler(s.Actions),
	}
}
