package services

import (
	portsrepo "github.com/hisabline/party_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hisabline/party_ledger_app/internal/core/ports/services"
	"github.com/hisabline/party_ledger_app/internal/platform/config"
	"github.com/hisabline/party_ledger_app/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, telemetry *utils.TelemetryClient) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Catalog first since the ledger view enforces policy through it
	container.PartyCatalog = NewPartyCatalogService(
		repos.PartyDirectory,
		cfg.CompanyName,
		WithTelemetryClient(telemetry),
	)

	container.LedgerView = NewLedgerViewService(repos.LedgerStore, container.PartyCatalog, cfg.CompanyName)
	container.User = NewUserService(repos.UserRepo, cfg)
	container.Token = NewTokenService(cfg, container.User)

	return container
}
