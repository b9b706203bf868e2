package app

import (
	"database/sql"

	log "github.com/sirupsen/logrus"

	"github.com/lifeos/lifeos/internal/config"
	"github.com/lifeos/lifeos/internal/utils"
	"github.com/lifeos/lifeos/pkg/assistant"
	"github.com/lifeos/lifeos/pkg/formula"
	"github.com/lifeos/lifeos/pkg/lifedata"
	"github.com/lifeos/lifeos/pkg/storage"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	LocalStore  storage.LocalStore
	RemoteStore storage.RemoteStore

	Store       *lifedata.Store
	DataHandler *lifedata.Handler

	FormulaHandler *formula.Handler

	AssistantService assistant.Service
	AssistantHandler *assistant.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
// db is nil when remote sync is disabled.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = utils.SystemClock{}

	deps.LocalStore = storage.NewFileStore(cfg.Storage.Dir)
	if db != nil {
		deps.RemoteStore = storage.NewPostgresStore(db, deps.Clock)
	}

	deps.Store = lifedata.NewStore(deps.LocalStore, deps.RemoteStore, deps.Clock)
	deps.DataHandler = lifedata.NewHandler(deps.Store)

	deps.FormulaHandler = formula.NewHandler()

	var client assistant.Client
	if cfg.Assistant.ApiKey != "" {
		client = assistant.NewClient(cfg.Assistant.ApiKey, cfg.Assistant.Model)
	} else {
		log.Info("Assistant API key not configured, insights will be unavailable")
	}
	deps.AssistantService = assistant.NewService(client)
	deps.AssistantHandler = assistant.NewHandler(deps.AssistantService, deps.Store)

	return deps
}
