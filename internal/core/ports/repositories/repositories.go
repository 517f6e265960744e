package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// It allows passing a single dependency to the service container instead of
// individual repositories.
type RepositoryProvider struct {
	PartyDirectory PartyDirectoryFacade
	LedgerStore    LedgerStoreFacade
	UserRepo       UserRepositoryFacade
}
