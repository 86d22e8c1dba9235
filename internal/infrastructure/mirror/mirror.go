// Package mirror escribe el config publicado a disco local como respaldo.
// Es un canal lateral de solo escritura: nunca es fuente de verdad y nunca
// se lee de vuelta al arrancar.
package mirror

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
)

// FileMirror espejo JSON del config sobre un filesystem afero (disco real
// en producción, memoria en tests).
type FileMirror struct {
	fs   afero.Fs
	path string
}

// New construye el espejo sobre el filesystem y la ruta indicados.
func New(fs afero.Fs, path string) *FileMirror {
	return &FileMirror{fs: fs, path: path}
}

// Write reemplaza el archivo espejo con el config recibido. Escribe sobre
// un archivo temporal y renombra, así una caída a mitad de escritura no
// deja un espejo corrupto.
func (m *FileMirror) Write(cfg siteconfig.SiteConfig) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal espejo: %w", err)
	}

	if dir := filepath.Dir(m.path); dir != "." {
		if err := m.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio del espejo: %w", err)
		}
	}

	tmp := m.path + ".tmp"
	if err := afero.WriteFile(m.fs, tmp, raw, 0o644); err != nil {
		return fmt.Errorf("escribir espejo: %w", err)
	}
	if err := m.fs.Rename(tmp, m.path); err != nil {
		return fmt.Errorf("renombrar espejo: %w", err)
	}
	return nil
}
