package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/edvin/customers/internal/model"
)

// Memory is an in-process CustomerStore. Each method is atomic on its own;
// nothing spans calls.
type Memory struct {
	mu        sync.Mutex
	customers map[int64]model.Customer
	nextID    int64
}

func NewMemory() *Memory {
	return &Memory{customers: make(map[int64]model.Customer)}
}

func (s *Memory) FindByID(_ context.Context, id int64) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, fmt.Errorf("get customer %d: %w", id, ErrNotFound)
	}
	out := clone(c)
	return &out, nil
}

func (s *Memory) FindAll(_ context.Context) ([]model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := make([]model.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		customers = append(customers, clone(c))
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

func (s *Memory) Save(_ context.Context, c *model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == 0 {
		s.nextID++
		c.ID = s.nextID
	} else if _, ok := s.customers[c.ID]; !ok {
		return fmt.Errorf("update customer %d: %w", c.ID, ErrNotFound)
	}
	s.customers[c.ID] = clone(*c)
	return nil
}

func (s *Memory) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.customers, id)
	return nil
}

func clone(c model.Customer) model.Customer {
	out := model.Customer{ID: c.ID}
	if c.Name != nil {
		name := *c.Name
		out.Name = &name
	}
	if c.Email != nil {
		email := *c.Email
		out.Email = &email
	}
	return out
}
