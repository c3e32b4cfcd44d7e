package service

import "errors"

// Sentinel errors the handler layer maps onto HTTP status codes.
var (
	ErrProductNotFound      = errors.New("producto no encontrado")
	ErrCustomerNotFound     = errors.New("cliente no encontrado")
	ErrDuplicateCustomer    = errors.New("ya existe un cliente con ese nombre")
	ErrEmptyCustomerName    = errors.New("el nombre es obligatorio")
	ErrNoOutstandingBalance = errors.New("el cliente no tiene deuda pendiente")
	ErrInvalidAmount        = errors.New("el monto debe ser mayor a cero")
	ErrInvalidDateRange     = errors.New("rango de fechas invalido, use YYYY-MM-DD")
)
