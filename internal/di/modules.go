package di

import (
	"log"

	"orders-gateway/config"
	"orders-gateway/internal/apis/handlers"
	"orders-gateway/internal/repositories"
	"orders-gateway/internal/services"
	"orders-gateway/pkg/mongodb"

	"go.uber.org/dig"
)

var DiContainer *dig.Container

func Initialize() {
	DiContainer = dig.New()

	// The provider connects lazily; nothing dials MongoDB at startup.
	provider := mongodb.NewProvider(mongodb.Config{
		ConnectionURL: config.Env.MongoURI,
		DatabaseName:  config.Env.DatabaseName,
	})

	if err := DiContainer.Provide(func() *mongodb.Provider { return provider }); err != nil {
		log.Fatalf("Failed to provide MongoDB provider: %v", err)
	}

	if err := DiContainer.Provide(func(p *mongodb.Provider) repositories.DocumentRepository {
		return repositories.NewDocumentRepository(p)
	}); err != nil {
		log.Fatalf("Failed to provide document repository: %v", err)
	}

	if err := DiContainer.Provide(func(repo repositories.DocumentRepository) services.QueryService {
		return services.NewQueryService(repo)
	}); err != nil {
		log.Fatalf("Failed to provide query service: %v", err)
	}

	if err := DiContainer.Provide(func(queryService services.QueryService) *handlers.QueryHandler {
		return handlers.NewQueryHandler(queryService)
	}); err != nil {
		log.Fatalf("Failed to provide query handler: %v", err)
	}

	if err := DiContainer.Provide(func(queryService services.QueryService) *handlers.HealthHandler {
		return handlers.NewHealthHandler(queryService)
	}); err != nil {
		log.Fatalf("Failed to provide health handler: %v", err)
	}
}

// GetQueryHandler retrieves the QueryHandler from the DI container
func GetQueryHandler() (*handlers.QueryHandler, error) {
	var handler *handlers.QueryHandler
	err := DiContainer.Invoke(func(h *handlers.QueryHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}

// GetHealthHandler retrieves the HealthHandler from the DI container
func GetHealthHandler() (*handlers.HealthHandler, error) {
	var handler *handlers.HealthHandler
	err := DiContainer.Invoke(func(h *handlers.HealthHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}
