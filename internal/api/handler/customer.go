package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/edvin/customers/internal/api/request"
	"github.com/edvin/customers/internal/api/response"
	"github.com/edvin/customers/internal/core"
	"github.com/edvin/customers/internal/model"
)

// AllowedMethods is the capability list advertised by OPTIONS /customers.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

type Customer struct {
	svc *core.CustomerService
}

func NewCustomer(svc *core.CustomerService) *Customer {
	return &Customer{svc: svc}
}

// List godoc
//
//	@Summary		List customers
//	@Tags			Customers
//	@Success		200 {array} model.CustomerDTO
//	@Failure		500 {object} response.ErrorResponse
//	@Router			/customers [get]
func (h *Customer) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, customers)
}

// Get godoc
//
//	@Summary		Get a customer
//	@Tags			Customers
//	@Param			id path int true "Customer ID"
//	@Success		200 {object} model.CustomerDTO
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/customers/{id} [get]
func (h *Customer) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, customer)
}

// Create godoc
//
//	@Summary		Create a customer
//	@Description	Any id in the body is ignored; the server assigns one.
//	@Tags			Customers
//	@Param			body body model.CustomerDTO true "Customer"
//	@Success		201 {object} model.CustomerDTO
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		500 {object} response.ErrorResponse
//	@Router			/customers [post]
func (h *Customer) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CustomerDTO
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, customer)
}

// Update godoc
//
//	@Summary		Replace a customer
//	@Description	Overwrites name and email; omitted or null fields are cleared.
//	@Tags			Customers
//	@Param			id path int true "Customer ID"
//	@Param			body body model.CustomerDTO true "Customer"
//	@Success		200 {object} model.CustomerDTO
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/customers/{id} [put]
func (h *Customer) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.CustomerDTO
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, customer)
}

// Patch godoc
//
//	@Summary		Partially update a customer
//	@Description	Only non-null fields in the body are applied.
//	@Tags			Customers
//	@Param			id path int true "Customer ID"
//	@Param			body body model.CustomerDTO true "Fields to change"
//	@Success		200 {object} model.CustomerDTO
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/customers/{id} [patch]
func (h *Customer) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.CustomerDTO
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.svc.PartialUpdate(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, customer)
}

// Delete godoc
//
//	@Summary		Delete a customer
//	@Tags			Customers
//	@Param			id path int true "Customer ID"
//	@Success		204
//	@Failure		400 {object} response.ErrorResponse
//	@Failure		404 {object} response.ErrorResponse
//	@Router			/customers/{id} [delete]
func (h *Customer) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Head godoc
//
//	@Summary		Customer metadata as headers
//	@Tags			Customers
//	@Param			id path int true "Customer ID"
//	@Success		200
//	@Header			200 {string} Customer-ID "Customer ID"
//	@Header			200 {string} Customer-Name "Customer name"
//	@Header			200 {string} Customer-Email "Customer email"
//	@Failure		404
//	@Router			/customers/{id} [head]
func (h *Customer) Head(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	headers, ok, err := h.svc.BuildHeaders(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	for _, hdr := range headers {
		w.Header().Set(hdr.Name, hdr.Value)
	}
	w.WriteHeader(http.StatusOK)
}

// Options godoc
//
//	@Summary		Supported methods
//	@Tags			Customers
//	@Success		200
//	@Header			200 {string} Allow "Allowed methods"
//	@Router			/customers [options]
func (h *Customer) Options(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", strings.Join(AllowedMethods, ", "))
	w.WriteHeader(http.StatusOK)
}

// writeServiceError maps a service error onto a status code.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrNotFound) {
		response.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	response.WriteError(w, http.StatusInternalServerError, err.Error())
}
