package siteconfig

import (
	"sync"
	"time"

	model "github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
)

// Buffer es el borrador de un operador: una copia local y no persistida del
// config vivo que acumula ediciones antes de publicar. Se reinicia al valor
// vivo cada vez que el operador (re)entra al editor.
type Buffer struct {
	store *Store

	mu    sync.Mutex
	draft model.SiteConfig
}

// Open reinicia el borrador a una copia del config vivo. Siempre es copia,
// nunca referencia compartida: una edición jamás puede filtrarse al valor
// vivo antes de publicar.
func (b *Buffer) Open() model.SiteConfig {
	live := b.store.Live()
	b.mu.Lock()
	b.draft = live
	b.mu.Unlock()
	return live.Clone()
}

// Apply superpone un parcial JSON de edición sobre el borrador. La
// validación es estricta (tipo y claves) y ocurre aquí, en la frontera:
// un valor malformado se rechaza sin tocar el borrador. No se valida rango;
// el renderer recorta defensivamente los campos acotados.
func (b *Buffer) Apply(partial []byte) (model.SiteConfig, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	next, err := model.Patch(b.draft, partial)
	if err != nil {
		return model.SiteConfig{}, err
	}
	b.draft = next
	return next.Clone(), nil
}

// Discard descarta las ediciones no publicadas reabriendo el borrador.
func (b *Buffer) Discard() model.SiteConfig {
	return b.Open()
}

// Snapshot devuelve una copia del borrador para entregarla al publicador.
// Ediciones posteriores no mutan un snapshot ya entregado.
func (b *Buffer) Snapshot() model.SiteConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft.Clone()
}

// Session agrupa el borrador de un operador con su máquina de publicación.
type Session struct {
	Buffer
	Publisher Publisher
}

// Manager mantiene las sesiones de edición por operador (clave: user ID del
// token). La consistencia entre sesiones es last-write-wins a granularidad
// de Publish; no hay merge entre operadores (limitación documentada del
// diseño, no un defecto a corregir aquí).
type Manager struct {
	store  *Store
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager construye el manager de sesiones. statusWindow es la ventana
// cosmética durante la cual el estado success/failure queda visible antes
// de volver a idle.
func NewManager(store *Store, statusWindow time.Duration, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	if statusWindow <= 0 {
		statusWindow = 3 * time.Second
	}
	return &Manager{
		store:    store,
		window:   statusWindow,
		now:      now,
		sessions: make(map[string]*Session),
	}
}

// Session devuelve la sesión de edición del operador, creándola (y
// abriendo su borrador) la primera vez.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := &Session{}
	s.Buffer.store = m.store
	s.Publisher.store = m.store
	s.Publisher.window = m.window
	s.Publisher.now = m.now
	s.Buffer.Open()
	m.sessions[userID] = s
	return s
}
