package dto

import "time"

// CustomerResponse salida de un cliente del panel de operador.
type CustomerResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerListResponse lista de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
}

// SetCustomerBlockedRequest bloqueo/desbloqueo de un cliente.
type SetCustomerBlockedRequest struct {
	Blocked bool `json:"blocked"`
}
