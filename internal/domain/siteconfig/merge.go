package siteconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dumplinghouse/storefront-api/internal/domain"
)

// Merge superpone un documento JSON parcial sobre una copia de base y
// devuelve el resultado. Es una mezcla superficial a nivel de campo: las
// claves presentes en partial reemplazan el valor de base y las ausentes lo
// conservan. Los sub-objetos de imagen se mezclan clave a clave (un partial
// con solo {"heroImage":{"scale":1.5}} conserva url y posición), pero los
// arreglos (navLabels, featureBoxes) se reemplazan completos.
//
// Claves desconocidas se ignoran: el blob persistido puede venir de una
// versión anterior o posterior del esquema.
func Merge(base SiteConfig, partial []byte) (SiteConfig, error) {
	out := base.Clone()
	if len(partial) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(partial, &out); err != nil {
		return base, fmt.Errorf("merge config: %w", err)
	}
	return out, nil
}

// Patch aplica un parcial de edición sobre una copia de base con validación
// estricta: claves desconocidas o valores con tipo incorrecto se rechazan
// con domain.ErrInvalidFieldValue antes de tocar el borrador. El renderer
// tiene derecho a asumir input bien tipado; esta es la frontera que lo
// garantiza.
func Patch(base SiteConfig, partial []byte) (SiteConfig, error) {
	if len(bytes.TrimSpace(partial)) == 0 {
		return base.Clone(), nil
	}
	out := base.Clone()
	dec := json.NewDecoder(bytes.NewReader(partial))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return base, fmt.Errorf("%w: %v", domain.ErrInvalidFieldValue, err)
	}
	return out, nil
}
