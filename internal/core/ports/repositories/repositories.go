package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
	InvoiceRepo  InvoiceRepositoryWithTx
	AccountRepo  AccountRepositoryFacade
	UserRepo     UserRepositoryFacade
}
