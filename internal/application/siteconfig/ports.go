// Package siteconfig contiene los casos de uso del motor de configuración
// del sitio: el holder del config vivo (Store), los buffers de staging por
// operador (Manager/Session) y la máquina de estados de publicación
// (Publisher).
package siteconfig

import (
	model "github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
)

// Mirror es el canal lateral de durabilidad local: recibe cada config
// publicado como respaldo ante caídas. Es solo escritura; nunca es fuente
// de verdad ni se lee de vuelta en Initialize.
type Mirror interface {
	Write(cfg model.SiteConfig) error
}
