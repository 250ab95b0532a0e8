package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jokeboard/src/core/domain"
	"jokeboard/src/core/ports"
	"jokeboard/src/infra/db"
)

var _ ports.Store = (*PostgresRepository)(nil)

// PostgresRepository implements ports.Store using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// isInvalidText reports a malformed value for a typed column, e.g. a
// non-uuid string compared against a uuid id.
func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22P02"
	}
	return false
}

// Users

func (r *PostgresRepository) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	const q = `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id::text, username, password_hash, created_at, updated_at
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, uuid.NewString(), username, passwordHash).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("username already taken")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.NewNotFoundError("user")
	}
	const q = `
		SELECT id::text, username, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, q, userID))
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
		SELECT id::text, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, q, username))
}

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

// Jokes

func (r *PostgresRepository) RecentJokeSummaries(ctx context.Context, limit int) ([]domain.JokeSummary, error) {
	const q = `
		SELECT id::text, name
		FROM jokes
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jokes := make([]domain.JokeSummary, 0, limit)
	for rows.Next() {
		var j domain.JokeSummary
		if err := rows.Scan(&j.ID, &j.Name); err != nil {
			return nil, err
		}
		jokes = append(jokes, j)
	}
	return jokes, rows.Err()
}

func (r *PostgresRepository) CreateJoke(ctx context.Context, joke domain.NewJoke) (*domain.Joke, error) {
	const q = `
		INSERT INTO jokes (id, jokester_id, name, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, jokester_id::text, name, content, created_at, updated_at
	`
	j, err := r.scanJoke(r.pool.QueryRow(ctx, q, uuid.NewString(), joke.JokesterID, joke.Name, joke.Content))
	if err != nil {
		if isForeignKeyViolation(err) || isInvalidText(err) {
			r.log.Warn("joke rejected by store", "jokester_id", joke.JokesterID, "error", err)
			return nil, fmt.Errorf("insert joke: jokester %s does not exist: %w", joke.JokesterID, err)
		}
		return nil, fmt.Errorf("insert joke: %w", err)
	}
	return j, nil
}

func (r *PostgresRepository) GetJoke(ctx context.Context, jokeID string) (*domain.Joke, error) {
	const q = `
		SELECT id::text, jokester_id::text, name, content, created_at, updated_at
		FROM jokes
		WHERE id = $1
	`
	j, err := r.scanJoke(r.pool.QueryRow(ctx, q, jokeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return j, nil
}

func (r *PostgresRepository) RandomJoke(ctx context.Context) (*domain.Joke, error) {
	const q = `
		SELECT id::text, jokester_id::text, name, content, created_at, updated_at
		FROM jokes
		OFFSET floor(random() * (SELECT count(*) FROM jokes))::bigint
		LIMIT 1
	`
	j, err := r.scanJoke(r.pool.QueryRow(ctx, q))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return j, nil
}

func (r *PostgresRepository) scanJoke(row pgx.Row) (*domain.Joke, error) {
	var j domain.Joke
	if err := row.Scan(&j.ID, &j.JokesterID, &j.Name, &j.Content, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}
