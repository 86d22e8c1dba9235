package repository

import (
	"context"

	"github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
)

// SiteConfigRepository define el puerto de persistencia del config del
// sitio. Hay exactamente un registro (singleton con id fijo), no hay
// configuración por tenant en este diseño.
type SiteConfigRepository interface {
	// Get devuelve el blob JSON persistido, o nil si aún no existe.
	// El llamador lo mezcla sobre los defaults; de esa forma un blob de un
	// esquema anterior sigue siendo legible.
	Get(ctx context.Context) ([]byte, error)
	// Put reemplaza el registro completo (upsert sobre el id fijo).
	Put(ctx context.Context, cfg siteconfig.SiteConfig) error
}
