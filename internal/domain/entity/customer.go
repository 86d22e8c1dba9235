package entity

import "time"

// Customer representa un cliente registrado. Email es la clave de
// identidad. Blocked es una puerta de acceso controlada por el operador;
// en esta capa es solo informativa (la aplica el servicio de identidad
// externo).
type Customer struct {
	Email     string
	Name      string
	Role      string // "customer" | "seller"
	Blocked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
