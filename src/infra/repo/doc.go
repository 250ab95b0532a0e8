// Package repo contains the store adapters implementing src/core/ports.Store.
//
//   - PostgresRepository: pgx-backed, the production store
//   - MemoryRepository: in-process, for tests and APP_DB_DRIVER=memory
//
// Both map missing rows to domain.NewNotFoundError and duplicate usernames
// to domain.NewConflictError, so callers never see driver errors for those
// cases. Joke summaries are always returned newest first.
package repo
