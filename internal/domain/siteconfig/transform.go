package siteconfig

// Placement es la colocación resuelta de una imagen: foco en porcentaje,
// escala y rotación listos para traducirse a CSS (object-position /
// background-position + transform).
type Placement struct {
	PositionX int     `json:"positionX"` // 0–100, foco horizontal
	PositionY int     `json:"positionY"` // 0–100, foco vertical
	Scale     float64 `json:"scale"`     // > 0; 1.0 = sin zoom
	Rotate    float64 `json:"rotate"`    // grados
}

// Cover indica si el layout puede usar la estrategia barata de ajuste
// (background-size: cover) sin cambiar el resultado visible. Solo aplica
// con escala exactamente 1.0.
func (p Placement) Cover() bool {
	return p.Scale == 1.0
}

// Resolve calcula la colocación del slot indicado. Campos sin definir caen
// a sus defaults (escala 1.0, foco 50/50, rotación 0) y los acotados se
// recortan defensivamente al rango legal aunque la frontera de edición ya
// los valide. Función pura: ambos renders (público y preview) dependen de
// que el mismo config produzca siempre la misma colocación.
func Resolve(cfg *SiteConfig, slot Slot) Placement {
	f := cfg.Image(slot)
	if f == nil {
		return ResolvePlacement(ImageField{})
	}
	return ResolvePlacement(*f)
}

// ResolvePlacement resuelve la colocación de un ImageField suelto. Los
// platos del menú llevan las mismas compañeras de transformación fuera del
// SiteConfig y comparten esta resolución.
func ResolvePlacement(f ImageField) Placement {
	p := Placement{PositionX: 50, PositionY: 50, Scale: 1.0, Rotate: 0}
	if f.Scale > 0 {
		p.Scale = f.Scale
	}
	if f.PositionX != nil {
		p.PositionX = clampPct(*f.PositionX)
	}
	if f.PositionY != nil {
		p.PositionY = clampPct(*f.PositionY)
	}
	p.Rotate = f.Rotate
	return p
}

func clampPct(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
