package model

// Customer is the persisted customer record. Name and Email are nullable.
type Customer struct {
	ID    int64   `json:"id" db:"id"`
	Name  *string `json:"name" db:"name"`
	Email *string `json:"email" db:"email"`
}

// CustomerDTO is the wire representation exchanged with API clients.
// Every field is optional; ID is ignored on inbound conversion.
type CustomerDTO struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// ToDTO converts a stored customer to its wire form.
func ToDTO(c Customer) CustomerDTO {
	id := c.ID
	return CustomerDTO{
		ID:    &id,
		Name:  c.Name,
		Email: c.Email,
	}
}

// ToDTOs converts a slice of stored customers. The result is never nil.
func ToDTOs(customers []Customer) []CustomerDTO {
	dtos := make([]CustomerDTO, 0, len(customers))
	for _, c := range customers {
		dtos = append(dtos, ToDTO(c))
	}
	return dtos
}

// ToEntity builds a new, unsaved customer from the transfer object.
// A client-supplied ID is dropped.
func (d CustomerDTO) ToEntity() Customer {
	return Customer{
		Name:  d.Name,
		Email: d.Email,
	}
}
