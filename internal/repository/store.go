package repository

// Store bundles the repositories of one backing implementation. The live
// database and the in-memory demo fallback both satisfy it, so business
// logic is written once against this contract.
type Store interface {
	Products() ProductRepository
	Orders() OrderRepository
	Users() UserRepository
	Messages() MessageRepository
	Analytics() AnalyticsRepository
	// Demo reports whether results are synthesized rather than durable.
	Demo() bool
}
