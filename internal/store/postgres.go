package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edvin/customers/internal/model"
)

type Postgres struct {
	db DB
}

func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	err := s.db.QueryRow(ctx,
		"SELECT id, name, email FROM customers WHERE id = $1", id,
	).Scan(&c.ID, &c.Name, &c.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get customer %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return &c, nil
}

func (s *Postgres) FindAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := s.db.Query(ctx, "SELECT id, name, email FROM customers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

func (s *Postgres) Save(ctx context.Context, c *model.Customer) error {
	if c.ID == 0 {
		err := s.db.QueryRow(ctx,
			`INSERT INTO customers (name, email) VALUES ($1, $2) RETURNING id`,
			c.Name, c.Email,
		).Scan(&c.ID)
		if err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
		return nil
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE customers SET name = $1, email = $2 WHERE id = $3`,
		c.Name, c.Email, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer %d: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update customer %d: %w", c.ID, ErrNotFound)
	}
	return nil
}

func (s *Postgres) DeleteByID(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	return nil
}

// Ping checks the underlying pool when it supports it.
func (s *Postgres) Ping(ctx context.Context) error {
	if p, ok := s.db.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
