package core

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/edvin/customers/internal/model"
)

// mockCustomerStore implements store.CustomerStore for testing.
type mockCustomerStore struct {
	mock.Mock
}

func (m *mockCustomerStore) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *mockCustomerStore) FindAll(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *mockCustomerStore) Save(ctx context.Context, c *model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCustomerStore) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func sp(s string) *string { return &s }
