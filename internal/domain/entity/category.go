package entity

import "time"

// CategoryAll es la categoría implícita "todos los platos": nunca se
// persiste, no puede borrarse y siempre va primera en la barra de
// categorías.
const CategoryAll = "Todos"

// Category agrupa platos del menú. Name es único y sensible a mayúsculas.
type Category struct {
	Name      string
	Position  int
	CreatedAt time.Time
}
