package siteconfig

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dumplinghouse/storefront-api/internal/domain"
	model "github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
)

// Estados de la publicación visibles para el operador.
type PublishState string

const (
	PublishIdle       PublishState = "idle"
	PublishPublishing PublishState = "publishing"
	PublishSuccess    PublishState = "success"
	PublishFailure    PublishState = "failure"
)

// PublishStatus es el estado actual del control de publicación del editor.
type PublishStatus struct {
	State PublishState `json:"state"`
	Error string       `json:"error,omitempty"`
}

// Publisher orquesta la acción de publicar de una sesión: toma el snapshot
// del borrador, llama a Store.Publish y gestiona el ciclo
// idle → publishing → success|failure → idle. El retorno a idle tras la
// ventana de visualización es puramente cosmético y se calcula contra el
// reloj inyectado, sin timers.
type Publisher struct {
	store  *Store
	window time.Duration
	now    func() time.Time

	mu         sync.Mutex
	publishing bool
	lastErr    string
	finishedAt time.Time
}

// Trigger lanza la publicación del snapshot. Un disparo con otra
// publicación en vuelo en esta sesión es un no-op (ni se encola ni es
// error): devuelve el estado publishing actual. Tras success el borrador
// NO se reinicia (ya coincide en contenido con el nuevo valor vivo); tras
// failure queda intacto para reintentar.
func (p *Publisher) Trigger(ctx context.Context, snapshot model.SiteConfig) PublishStatus {
	p.mu.Lock()
	if p.publishing {
		p.mu.Unlock()
		return PublishStatus{State: PublishPublishing}
	}
	p.publishing = true
	p.mu.Unlock()

	err := p.store.Publish(ctx, snapshot)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.publishing = false
	p.finishedAt = p.now()
	if err != nil {
		// ErrPublishInFlight viene de otra sesión compitiendo por el Store;
		// para este operador también es un fallo reintentable.
		if errors.Is(err, domain.ErrPublishInFlight) {
			p.lastErr = domain.ErrPublishInFlight.Error()
		} else {
			p.lastErr = err.Error()
		}
		return PublishStatus{State: PublishFailure, Error: p.lastErr}
	}
	p.lastErr = ""
	return PublishStatus{State: PublishSuccess}
}

// Status devuelve el estado actual: publishing mientras hay una operación
// en vuelo; success o failure dentro de la ventana de visualización; idle
// después.
func (p *Publisher) Status() PublishStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.publishing {
		return PublishStatus{State: PublishPublishing}
	}
	if p.finishedAt.IsZero() || p.now().Sub(p.finishedAt) >= p.window {
		return PublishStatus{State: PublishIdle}
	}
	if p.lastErr != "" {
		return PublishStatus{State: PublishFailure, Error: p.lastErr}
	}
	return PublishStatus{State: PublishSuccess}
}
