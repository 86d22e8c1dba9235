// Package render produce el view model completo de la página del sitio a
// partir de un SiteConfig y del read model de menú. El mismo renderer
// alimenta la ruta pública y la vista previa del editor: la paridad entre
// ambas es por construcción, no por disciplina.
package render

import (
	"github.com/shopspring/decimal"

	model "github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
)

// Modos de ajuste de una imagen de fondo. Con escala exactamente 1.0 el
// layout puede delegar el ajuste al navegador (cover); con cualquier otra
// escala debe aplicar la colocación explícita.
const (
	FitCover = "cover"
	FitZoom  = "zoom"
)

// Presentation son los ajustes cosméticos del render. Scale reduce la
// página de forma uniforme (vista previa dentro del editor) y Embedded
// indica que se renderiza incrustada. Ninguno de los dos altera el layout,
// el filtrado ni la resolución de campos.
type Presentation struct {
	Scale    float64 `json:"scale"`
	Embedded bool    `json:"embedded"`
}

// Image es una imagen resuelta: URL final (ya con fallback aplicado si el
// slot lo tiene) y colocación lista para traducir a CSS. Fit solo se emite
// para fondos.
type Image struct {
	URL       string          `json:"url"`
	Placement model.Placement `json:"placement"`
	Fit       string          `json:"fit,omitempty"`
}

// Theme colores del sitio.
type Theme struct {
	PrimaryColor     string `json:"primaryColor"`
	AccentColor      string `json:"accentColor"`
	HighlightColor   string `json:"highlightColor"`
	BtnGradientStart string `json:"btnGradientStart"`
	BtnGradientEnd   string `json:"btnGradientEnd"`
}

// Nav barra de navegación.
type Nav struct {
	BrandName string   `json:"brandName"`
	Logo      *Image   `json:"logo,omitempty"`
	Labels    []string `json:"labels"`
}

// Hero sección principal. Background nil significa sin imagen de fondo
// (URL vacía), no imagen rota.
type Hero struct {
	Title        string             `json:"title"`
	Highlight    string             `json:"highlight"`
	Text         string             `json:"text"`
	Subtitle     string             `json:"subtitle,omitempty"`
	Button1      string             `json:"button1"`
	Button2      string             `json:"button2"`
	Image        *Image             `json:"image,omitempty"`
	Background   *Image             `json:"background,omitempty"`
	FeatureBoxes []model.FeatureBox `json:"featureBoxes,omitempty"`
}

// CategoryTab pestaña de la barra de categorías.
type CategoryTab struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// MenuItemView plato listado en la grilla pública (ya filtrado).
type MenuItemView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Image        *Image          `json:"image,omitempty"`
	IsPopular    bool            `json:"isPopular,omitempty"`
	IsVegetarian bool            `json:"isVegetarian,omitempty"`
}

// Menu sección de menú: barra de categorías y grilla filtrada.
type Menu struct {
	Title      string         `json:"title"`
	Subtitle   string         `json:"subtitle"`
	Background *Image         `json:"background,omitempty"`
	Featured   *Image         `json:"featured,omitempty"`
	Categories []CategoryTab  `json:"categories"`
	Items      []MenuItemView `json:"items"`
}

// Banner promocional con la foto del chef. El fondo reutiliza el slot
// heroImage, con respaldo fijo cuando el slot está vacío.
type Banner struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ChefImage   *Image `json:"chefImage,omitempty"`
	Background  *Image `json:"background,omitempty"`
}

// About sección "nosotros".
type About struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Text       string `json:"text"`
	Image1     *Image `json:"image1,omitempty"`
	Image2     *Image `json:"image2,omitempty"`
	Stat1Title string `json:"stat1Title"`
	Stat2Title string `json:"stat2Title"`
	Background *Image `json:"background,omitempty"`
}

// Footer pie de página y datos de contacto. El copyright sale del config,
// nunca del reloj del proceso.
type Footer struct {
	Text         string        `json:"text"`
	Copyright    string        `json:"copyright"`
	ContactPhone string        `json:"contactPhone,omitempty"`
	ContactEmail string        `json:"contactEmail,omitempty"`
	Address      string        `json:"address,omitempty"`
	Coords       *model.Coords `json:"coords,omitempty"`
}

// Page es el view model completo del sitio. Hero nil significa sección
// oculta por el operador.
type Page struct {
	Presentation Presentation `json:"presentation"`
	SiteTitle    string       `json:"siteTitle"`
	Theme        Theme        `json:"theme"`
	Background   *Image       `json:"background,omitempty"`
	Nav          Nav          `json:"nav"`
	Hero         *Hero        `json:"hero,omitempty"`
	Menu         Menu         `json:"menu"`
	Banner       Banner       `json:"banner"`
	About        About        `json:"about"`
	Footer       Footer       `json:"footer"`
}
