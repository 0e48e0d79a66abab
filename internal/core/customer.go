package core

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/edvin/customers/internal/model"
	"github.com/edvin/customers/internal/store"
)

// Header is a single name/value pair of a customer header summary.
type Header struct {
	Name  string
	Value string
}

// HeaderSummary is the ordered header set describing one customer.
type HeaderSummary []Header

const (
	HeaderCustomerID    = "Customer-ID"
	HeaderCustomerName  = "Customer-Name"
	HeaderCustomerEmail = "Customer-Email"
)

type CustomerService struct {
	store store.CustomerStore
}

func NewCustomerService(s store.CustomerStore) *CustomerService {
	return &CustomerService{store: s}
}

// List returns every customer in store order. The slice is empty, not nil,
// when there are none.
func (s *CustomerService) List(ctx context.Context) ([]model.CustomerDTO, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Msg("fetching all customers")

	customers, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := model.ToDTOs(customers)
	log.Info().Int("count", len(dtos)).Msg("fetched customers")
	return dtos, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (model.CustomerDTO, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Int64("customer_id", id).Msg("fetching customer")

	c, err := s.find(ctx, id)
	if err != nil {
		return model.CustomerDTO{}, err
	}

	log.Info().Int64("customer_id", id).Msg("fetched customer")
	return model.ToDTO(*c), nil
}

// Create stores a new customer. Any id on the input is ignored; the store
// assigns one.
func (s *CustomerService) Create(ctx context.Context, in model.CustomerDTO) (model.CustomerDTO, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Msg("creating customer")

	c := in.ToEntity()
	if err := s.store.Save(ctx, &c); err != nil {
		return model.CustomerDTO{}, err
	}

	log.Info().Int64("customer_id", c.ID).Msg("created customer")
	return model.ToDTO(c), nil
}

// Update replaces every field except the id. Null fields on the input clear
// the stored value.
func (s *CustomerService) Update(ctx context.Context, id int64, in model.CustomerDTO) (model.CustomerDTO, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Int64("customer_id", id).Msg("updating customer")

	c, err := s.find(ctx, id)
	if err != nil {
		return model.CustomerDTO{}, err
	}

	c.Name = in.Name
	c.Email = in.Email

	if err := s.save(ctx, c); err != nil {
		return model.CustomerDTO{}, err
	}

	log.Info().Int64("customer_id", id).Msg("updated customer")
	return model.ToDTO(*c), nil
}

// PartialUpdate overwrites only the fields that are non-null on the input.
func (s *CustomerService) PartialUpdate(ctx context.Context, id int64, in model.CustomerDTO) (model.CustomerDTO, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Int64("customer_id", id).Msg("partially updating customer")

	c, err := s.find(ctx, id)
	if err != nil {
		return model.CustomerDTO{}, err
	}

	if in.Name != nil {
		c.Name = in.Name
	}
	if in.Email != nil {
		c.Email = in.Email
	}

	if err := s.save(ctx, c); err != nil {
		return model.CustomerDTO{}, err
	}

	log.Info().Int64("customer_id", id).Msg("partially updated customer")
	return model.ToDTO(*c), nil
}

// Delete removes the customer. The existence check is explicit so a missing
// id surfaces as NotFoundError instead of a silent no-op.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	log := zerolog.Ctx(ctx)
	log.Info().Int64("customer_id", id).Msg("deleting customer")

	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("customer_id", id).Msg("deleted customer")
	return nil
}

// BuildHeaders returns the header summary for a customer. Unlike the other
// operations a missing customer is reported through ok == false, not an error.
func (s *CustomerService) BuildHeaders(ctx context.Context, id int64) (HeaderSummary, bool, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Int64("customer_id", id).Msg("building customer headers")

	dto, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	headers := HeaderSummary{
		{Name: HeaderCustomerID, Value: formatID(dto.ID)},
		{Name: HeaderCustomerName, Value: deref(dto.Name)},
		{Name: HeaderCustomerEmail, Value: deref(dto.Email)},
	}

	log.Info().Int64("customer_id", id).Msg("built customer headers")
	return headers, true, nil
}

func (s *CustomerService) find(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.store.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// save writes an existing record. A row deleted between read and write is
// reported as not found.
func (s *CustomerService) save(ctx context.Context, c *model.Customer) error {
	err := s.store.Save(ctx, c)
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{ID: c.ID}
	}
	return err
}
