// Package leads provides the lead aggregation bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"leaddesk_backend/internal/config"
	apphttp "leaddesk_backend/internal/http"
	"leaddesk_backend/internal/leads/cache"
	"leaddesk_backend/internal/leads/handler"
	"leaddesk_backend/internal/leads/service"
	"leaddesk_backend/internal/leads/sources"
	"leaddesk_backend/platform/logger"
	"leaddesk_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module with all its
// dependencies. redisClient may be nil; the snapshot cache then disables
// itself.
func NewModule(cfg *config.Config, redisClient *redis.Client, val *validator.Validator, log *logger.Logger) *Module {
	client := sources.NewClient(cfg.CRMBaseURL, cfg.UpstreamTimeout, cfg.UpstreamRatePerSec, log)

	// Registration order defines aggregation order.
	adapters := []sources.Adapter{
		sources.NewContactFormAdapter(client),
		sources.NewChatbotAdapter(client),
		sources.NewScheduleMeetingAdapter(client),
		sources.NewSDRAdapter(client),
		sources.NewLeadScoringAdapter(client),
	}

	writer := sources.NewCRMWriter(client)
	snapshots := cache.New(redisClient, cfg.CacheTTL, log)
	svc := service.New(adapters, writer, writer, snapshots, log, cfg.FetchLimit)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the aggregation service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	leadsGroup := ctx.V1.Group("/leads")
	m.handler.RegisterRoutes(leadsGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
