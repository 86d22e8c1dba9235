package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
	"github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
)

var _ repository.SiteConfigRepository = (*SiteConfigRepo)(nil)

// siteConfigID id fijo del registro singleton: hay exactamente un config
// del sitio.
const siteConfigID = 1

// SiteConfigRepo persistencia del config del sitio como blob jsonb
// (usable con pool o tx).
type SiteConfigRepo struct {
	q Querier
}

// NewSiteConfigRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSiteConfigRepository(q Querier) *SiteConfigRepo {
	return &SiteConfigRepo{q: q}
}

// Get devuelve el blob JSON persistido o nil si aún no se publicó nada.
// El blob se entrega crudo: la mezcla sobre los defaults es del dominio,
// así un blob de un esquema anterior sigue siendo legible.
func (r *SiteConfigRepo) Get(ctx context.Context) ([]byte, error) {
	const query = `SELECT data FROM site_configs WHERE id = $1`
	var raw []byte
	err := r.q.QueryRow(ctx, query, siteConfigID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get site config: %w", err)
	}
	return raw, nil
}

// Put reemplaza el registro completo (upsert sobre el id fijo).
func (r *SiteConfigRepo) Put(ctx context.Context, cfg siteconfig.SiteConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal site config: %w", err)
	}
	const query = `
		INSERT INTO site_configs (id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, siteConfigID, raw, time.Now()); err != nil {
		return fmt.Errorf("put site config: %w", err)
	}
	return nil
}
