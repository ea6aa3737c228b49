package services

import (
	"log/slog"

	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The builder has no dependencies; the
// synchronizer depends on it plus the balance updater; the dispatcher sits
// on top, consuming the change feed.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, feed portsrepo.ChangeFeed, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Builder = NewEntryBuilder()
	container.FundBalance = NewFundBalanceService(repos.FundSourceRepo)
	container.Synchronizer = NewSynchronizerService(
		container.Builder,
		container.FundBalance,
		repos.CategoryRepo,
		repos.JournalRepo,
	)
	container.Dispatcher = NewDispatcherService(feed, container.Synchronizer, logger)
	container.Reader = NewLedgerReaderService(repos.JournalRepo, repos.FundSourceRepo, repos.ExpenseRepo)

	return container
}
