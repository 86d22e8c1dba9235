package siteconfig

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dumplinghouse/storefront-api/internal/domain"
	"github.com/dumplinghouse/storefront-api/internal/domain/repository"
	model "github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
	"github.com/dumplinghouse/storefront-api/pkg/logger"
)

// LoadState estado de la carga inicial del config.
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateLoaded  LoadState = "loaded"
	StateFailed  LoadState = "failed"
)

// Store es el holder único del config vivo del proceso. Es el único dueño
// del valor: toda mutación pasa por Publish y toda lectura devuelve copia.
// Los renderers reciben el valor por inyección, nunca como global ambiente.
type Store struct {
	repo    repository.SiteConfigRepository
	mirror  Mirror // opcional (nil = sin espejo local)
	log     *logger.Logger
	timeout time.Duration

	mu    sync.RWMutex
	live  model.SiteConfig
	state LoadState

	// publishMu serializa las publicaciones: una segunda publicación con la
	// primera en vuelo se rechaza, nunca se intercala (una escritura lenta
	// no puede pisar silenciosamente a una rápida posterior).
	publishMu sync.Mutex
}

// NewStore construye el holder. Initialize debe completarse antes de servir
// al primer consumidor.
func NewStore(repo repository.SiteConfigRepository, mirror Mirror, log *logger.Logger, publishTimeout time.Duration) *Store {
	if publishTimeout <= 0 {
		publishTimeout = 10 * time.Second
	}
	return &Store{
		repo:    repo,
		mirror:  mirror,
		log:     log,
		timeout: publishTimeout,
		live:    model.Defaults(),
		state:   StateLoading,
	}
}

// Initialize carga el config persistido y lo mezcla sobre los defaults.
// Un fallo de carga o un registro vacío degradan a los defaults y se
// registran en el log; nunca se propagan al usuario final (disponibilidad
// sobre exactitud del contenido). Siempre termina con un config completo,
// que también se escribe al espejo local (cada cambio del valor vivo se
// espeja, no solo las publicaciones).
func (s *Store) Initialize(ctx context.Context) {
	cfg := model.Defaults()
	state := StateLoaded

	raw, err := s.repo.Get(ctx)
	switch {
	case err != nil:
		s.log.Error().Err(err).Msg("carga del config del sitio, usando defaults")
		state = StateFailed
	case len(raw) == 0:
		s.log.Info().Msg("config del sitio aún no publicado, usando defaults")
	default:
		merged, merr := model.Merge(model.Defaults(), raw)
		if merr != nil {
			s.log.Error().Err(merr).Msg("config del sitio malformado, usando defaults")
			state = StateFailed
		} else {
			cfg = merged
		}
	}

	s.setLive(cfg, state)
	s.writeMirror(cfg)
}

// Publish persiste newConfig como el nuevo config del sitio y, solo si la
// escritura tuvo éxito, lo convierte en el valor vivo de forma atómica.
// Ante fallo el valor vivo queda intacto y el error se devuelve al llamador
// para mostrarlo al operador; el borrador no se toca, así el reintento sale
// con el mismo payload.
func (s *Store) Publish(ctx context.Context, newConfig model.SiteConfig) error {
	if !s.publishMu.TryLock() {
		return domain.ErrPublishInFlight
	}
	defer s.publishMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snapshot := newConfig.Clone()
	if err := s.repo.Put(ctx, snapshot); err != nil {
		return fmt.Errorf("publicar config del sitio: %w", err)
	}

	s.setLive(snapshot, StateLoaded)
	s.writeMirror(snapshot)
	return nil
}

// writeMirror copia el config al espejo local. El espejo es un respaldo:
// su fallo se registra y nunca invalida el cambio del valor vivo.
func (s *Store) writeMirror(cfg model.SiteConfig) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Write(cfg); err != nil {
		s.log.Warn().Err(err).Msg("espejo local del config")
	}
}

// Live devuelve una copia del config vivo. Los consumidores no pueden
// mutar el valor del Store a través de ella.
func (s *Store) Live() model.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live.Clone()
}

// State devuelve el estado de la carga inicial.
func (s *Store) State() LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) setLive(cfg model.SiteConfig, state LoadState) {
	s.mu.Lock()
	s.live = cfg
	s.state = state
	s.mu.Unlock()
}
