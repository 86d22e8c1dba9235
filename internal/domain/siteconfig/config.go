// Package siteconfig define el modelo de configuración visual del sitio:
// el esquema de campos editables, sus valores por defecto, la mezcla
// superficial usada al cargar y editar, y la resolución de transformaciones
// por imagen. Todo es puro: el mismo input produce siempre el mismo output,
// condición necesaria para que la vista previa y el sitio público coincidan.
package siteconfig

// ImageField es un slot de imagen editable: URL (o data URI), bandera de
// visibilidad y la micro-transformación aplicada al renderizar.
// Scale 0 significa "sin definir" (se resuelve a 1.0); PositionX/PositionY
// nil significan "sin definir" (se resuelven a 50/50) porque 0 es una
// posición legal. Rotate 0 es a la vez el default y un valor legal.
type ImageField struct {
	URL       string   `json:"url"`
	Hidden    bool     `json:"hidden"`
	Scale     float64  `json:"scale"`
	PositionX *float64 `json:"positionX"`
	PositionY *float64 `json:"positionY"`
	Rotate    float64  `json:"rotate"`
}

// Coords ubicación del local (opcional).
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FeatureBox recuadro destacado del hero (icono + título + subtítulo).
type FeatureBox struct {
	Icon     string `json:"icon"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// SiteConfig es el registro completo de campos editables del sitio.
// Cada campo es independiente y opcional con un default documentado en
// Defaults(); los slots de imagen agrupan sus compañeras de transformación
// en un sub-objeto tipado en lugar de familias de claves planas.
// Ningún campo lleva omitempty: el JSON serializado es el registro
// completo, de modo que un valor limpiado a vacío persiste como vacío y
// no vuelve al default al recargar sobre Defaults().
type SiteConfig struct {
	// Identidad
	BrandName string     `json:"brandName"`
	SiteTitle string     `json:"siteTitle"`
	Logo      ImageField `json:"logo"`
	Copyright string     `json:"copyright"`

	// Hero
	HeroTitle     string     `json:"heroTitle"`
	HeroHighlight string     `json:"heroHighlight"`
	HeroText      string     `json:"heroText"`
	HeroSubtitle  string     `json:"heroSubtitle"`
	HeroButton1   string     `json:"heroButton1"`
	HeroButton2   string     `json:"heroButton2"`
	HeroImage     ImageField `json:"heroImage"`
	HeroBgImage   ImageField `json:"heroBgImage"`

	// Sección de menú
	MenuTitle         string     `json:"menuTitle"`
	MenuSubtitle      string     `json:"menuSubtitle"`
	MenuBgImage       ImageField `json:"menuBgImage"`
	MenuFeaturedImage ImageField `json:"menuFeaturedImage"`

	// Banner promocional
	BannerTitle       string     `json:"bannerTitle"`
	BannerDescription string     `json:"bannerDescription"`
	BannerChefImage   ImageField `json:"bannerChefImage"`

	// Sección "nosotros"
	AboutTitle    string     `json:"aboutTitle"`
	AboutSubtitle string     `json:"aboutSubtitle"`
	AboutUs       string     `json:"aboutUs"`
	AboutImage1   ImageField `json:"aboutImage1"`
	AboutImage2   ImageField `json:"aboutImage2"`
	Stat1Title    string     `json:"stat1Title"`
	Stat2Title    string     `json:"stat2Title"`
	AboutBgImage  ImageField `json:"aboutBgImage"`

	// Footer y contacto
	FooterText   string   `json:"footerText"`
	ContactPhone string   `json:"contactPhone"`
	ContactEmail string   `json:"contactEmail"`
	Address      string   `json:"address"`
	Coords       *Coords  `json:"coords"`
	NavLabels    []string `json:"navLabels"`

	// Tema
	PrimaryColor     string `json:"primaryColor"`
	AccentColor      string `json:"accentColor"`
	HighlightColor   string `json:"highlightColor"`
	BtnGradientStart string `json:"btnGradientStart"`
	BtnGradientEnd   string `json:"btnGradientEnd"`

	// Fondo global
	GlobalBgImage ImageField `json:"globalBgImage"`

	// Recuadros destacados del hero
	FeatureBoxes []FeatureBox `json:"featureBoxes"`
}

// Slot identifica un slot de imagen del SiteConfig de forma tipada.
type Slot string

// Slots de imagen del sitio.
const (
	SlotLogo              Slot = "logo"
	SlotHeroImage         Slot = "heroImage"
	SlotHeroBgImage       Slot = "heroBgImage"
	SlotMenuBgImage       Slot = "menuBgImage"
	SlotMenuFeaturedImage Slot = "menuFeaturedImage"
	SlotBannerChefImage   Slot = "bannerChefImage"
	SlotAboutImage1       Slot = "aboutImage1"
	SlotAboutImage2       Slot = "aboutImage2"
	SlotAboutBgImage      Slot = "aboutBgImage"
	SlotGlobalBgImage     Slot = "globalBgImage"
)

// Slots lista todos los slots de imagen en orden estable.
var Slots = []Slot{
	SlotLogo,
	SlotHeroImage,
	SlotHeroBgImage,
	SlotMenuBgImage,
	SlotMenuFeaturedImage,
	SlotBannerChefImage,
	SlotAboutImage1,
	SlotAboutImage2,
	SlotAboutBgImage,
	SlotGlobalBgImage,
}

// Image devuelve el puntero al ImageField del slot indicado, o nil si el
// slot no existe. La asociación es explícita: no hay lookup por
// concatenación de strings.
func (c *SiteConfig) Image(slot Slot) *ImageField {
	switch slot {
	case SlotLogo:
		return &c.Logo
	case SlotHeroImage:
		return &c.HeroImage
	case SlotHeroBgImage:
		return &c.HeroBgImage
	case SlotMenuBgImage:
		return &c.MenuBgImage
	case SlotMenuFeaturedImage:
		return &c.MenuFeaturedImage
	case SlotBannerChefImage:
		return &c.BannerChefImage
	case SlotAboutImage1:
		return &c.AboutImage1
	case SlotAboutImage2:
		return &c.AboutImage2
	case SlotAboutBgImage:
		return &c.AboutBgImage
	case SlotGlobalBgImage:
		return &c.GlobalBgImage
	}
	return nil
}

// Clone devuelve una copia profunda del config. Los buffers de staging y los
// snapshots de publicación dependen de que la copia no comparta memoria con
// el original.
func (c SiteConfig) Clone() SiteConfig {
	out := c

	if c.Coords != nil {
		coords := *c.Coords
		out.Coords = &coords
	}
	if c.NavLabels != nil {
		out.NavLabels = append([]string(nil), c.NavLabels...)
	}
	if c.FeatureBoxes != nil {
		out.FeatureBoxes = append([]FeatureBox(nil), c.FeatureBoxes...)
	}
	for _, slot := range Slots {
		f := out.Image(slot)
		if f.PositionX != nil {
			v := *f.PositionX
			f.PositionX = &v
		}
		if f.PositionY != nil {
			v := *f.PositionY
			f.PositionY = &v
		}
	}
	return out
}
