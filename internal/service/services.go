package service

import (
	"github.com/jmalhoy/go-trip-planner/internal/config"
	"github.com/jmalhoy/go-trip-planner/internal/logger"
	"github.com/jmalhoy/go-trip-planner/internal/store"
)

// Services aggregates all business-logic services consumed by the HTTP layer.
type Services struct {
	AuthService
	UserService
	ListService
	ItemService
}

// NewServices wires every service to its repositories and configuration.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg, logger),
		UserService: NewUserService(repositories.UserRepository, repositories.ListRepository, cfg.BcryptCost, logger),
		ListService: NewListService(repositories.ListRepository, repositories.ItemRepository, logger),
		ItemService: NewItemService(repositories.ItemRepository, logger),
	}
}
