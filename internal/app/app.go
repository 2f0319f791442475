// Package app wires the CRM's dependencies for one command invocation:
// database pool, repositories, services, session manager and permission
// evaluator.
package app

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm/config"
	"github.com/epicevents/crm/internal/db"
	"github.com/epicevents/crm/internal/permissions"
	"github.com/epicevents/crm/internal/services"
	"github.com/epicevents/crm/internal/session"
	"github.com/epicevents/crm/internal/store"
	"github.com/epicevents/crm/pkg/logger"
)

// App holds every dependency a command needs.
type App struct {
	Config config.Config
	Log    zerolog.Logger

	Users     *services.UserService
	Clients   *services.ClientService
	Contracts *services.ContractService
	Events    *services.EventService

	Sessions *session.Manager
	Perms    *permissions.Evaluator

	dbConn *sql.DB
}

// New opens the database and builds the full dependency graph.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.TokenSecret) == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env != "production",
	})

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	clientRepo := store.NewClientRepository(dbConn)
	contractRepo := store.NewContractRepository(dbConn)
	eventRepo := store.NewEventRepository(dbConn)

	sessions := session.NewManager(session.NewFileStore(cfg.TokenFile), cfg.TokenSecret, userRepo)

	return &App{
		Config:    cfg,
		Log:       log,
		Users:     services.NewUserService(userRepo),
		Clients:   services.NewClientService(clientRepo),
		Contracts: services.NewContractService(contractRepo, userRepo, clientRepo),
		Events:    services.NewEventService(eventRepo, contractRepo, userRepo),
		Sessions:  sessions,
		Perms:     permissions.NewEvaluator(sessions, clientRepo, contractRepo, eventRepo),
		dbConn:    dbConn,
	}, nil
}

// Close releases the database pool.
func (a *App) Close() error {
	if a.dbConn != nil {
		return a.dbConn.Close()
	}
	return nil
}
