package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edvin/customers/internal/model"
)

// ErrNotFound is returned when no customer row exists for the requested id.
var ErrNotFound = errors.New("customer record not found")

// DB defines the database operations used by the Postgres store.
// *pgxpool.Pool satisfies this interface.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CustomerStore is the keyed record store behind the customer service.
type CustomerStore interface {
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)
	// Save inserts the customer when its ID is zero and assigns the new ID,
	// otherwise it overwrites the stored row.
	Save(ctx context.Context, c *model.Customer) error
	DeleteByID(ctx context.Context, id int64) error
}

// Pinger is implemented by stores that can report backend reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
