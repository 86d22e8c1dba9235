package render

import (
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	model "github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
)

// Fallbacks visuales fijos: estos slots nunca quedan vacíos en la página,
// el resto se omite del view model cuando su URL está vacía.
var slotFallbacks = map[model.Slot]string{
	model.SlotLogo:            "/logo.jpg",
	model.SlotGlobalBgImage:   "/interior.jpg",
	model.SlotBannerChefImage: "/chef.jpg",
	model.SlotAboutImage1:     "/dumpling2.jpg",
	model.SlotAboutImage2:     "/dumpling3.jpg",
}

// Render calcula el view model completo de la página. Es una función pura:
// sin reloj, sin aleatoriedad, sin estado; los mismos argumentos producen
// siempre la misma página. opts solo ajusta la presentación (escala de la
// vista previa), jamás el contenido.
func Render(cfg model.SiteConfig, items []entity.MenuItem, categories []string, activeCategory string, opts Presentation) Page {
	if opts.Scale <= 0 {
		opts.Scale = 1.0
	}

	page := Page{
		Presentation: opts,
		SiteTitle:    cfg.SiteTitle,
		Theme: Theme{
			PrimaryColor:     cfg.PrimaryColor,
			AccentColor:      cfg.AccentColor,
			HighlightColor:   cfg.HighlightColor,
			BtnGradientStart: cfg.BtnGradientStart,
			BtnGradientEnd:   cfg.BtnGradientEnd,
		},
		Background: background(&cfg, model.SlotGlobalBgImage),
		Nav: Nav{
			BrandName: cfg.BrandName,
			Logo:      image(&cfg, model.SlotLogo),
			Labels:    append([]string(nil), cfg.NavLabels...),
		},
		Hero: hero(&cfg),
		Menu: menu(&cfg, items, categories, activeCategory),
		Banner: Banner{
			Title:       cfg.BannerTitle,
			Description: cfg.BannerDescription,
			ChefImage:   image(&cfg, model.SlotBannerChefImage),
			Background:  bannerBackground(&cfg),
		},
		About: About{
			Title:      cfg.AboutTitle,
			Subtitle:   cfg.AboutSubtitle,
			Text:       cfg.AboutUs,
			Image1:     image(&cfg, model.SlotAboutImage1),
			Image2:     image(&cfg, model.SlotAboutImage2),
			Stat1Title: cfg.Stat1Title,
			Stat2Title: cfg.Stat2Title,
			Background: background(&cfg, model.SlotAboutBgImage),
		},
		Footer: Footer{
			Text:         cfg.FooterText,
			Copyright:    cfg.Copyright,
			ContactPhone: cfg.ContactPhone,
			ContactEmail: cfg.ContactEmail,
			Address:      cfg.Address,
		},
	}
	if cfg.Coords != nil {
		coords := *cfg.Coords
		page.Footer.Coords = &coords
	}
	return page
}

// hero arma la sección principal. El operador puede ocultarla por completo
// con la bandera hidden del fondo; un fondo con URL vacía solo omite la
// imagen, no la sección.
func hero(cfg *model.SiteConfig) *Hero {
	if cfg.HeroBgImage.Hidden {
		return nil
	}
	return &Hero{
		Title:        cfg.HeroTitle,
		Highlight:    cfg.HeroHighlight,
		Text:         cfg.HeroText,
		Subtitle:     cfg.HeroSubtitle,
		Button1:      cfg.HeroButton1,
		Button2:      cfg.HeroButton2,
		Image:        image(cfg, model.SlotHeroImage),
		Background:   background(cfg, model.SlotHeroBgImage),
		FeatureBoxes: append([]model.FeatureBox(nil), cfg.FeatureBoxes...),
	}
}

func menu(cfg *model.SiteConfig, items []entity.MenuItem, categories []string, activeCategory string) Menu {
	tabs := categoryTabs(categories, activeCategory)

	// activeCategory resuelta tras el fallback a "Todos".
	active := entity.CategoryAll
	for _, t := range tabs {
		if t.Active {
			active = t.Name
			break
		}
	}

	filtered := make([]MenuItemView, 0, len(items))
	for _, it := range items {
		if it.Disabled {
			continue
		}
		if active != entity.CategoryAll && it.Category != active {
			continue
		}
		filtered = append(filtered, itemView(it))
	}

	return Menu{
		Title:      cfg.MenuTitle,
		Subtitle:   cfg.MenuSubtitle,
		Background: background(cfg, model.SlotMenuBgImage),
		Featured:   image(cfg, model.SlotMenuFeaturedImage),
		Categories: tabs,
		Items:      filtered,
	}
}

// categoryTabs respeta el orden recibido del read model, garantiza "Todos"
// al frente y marca la pestaña activa. Una categoría activa que no existe
// en la barra cae a "Todos".
func categoryTabs(categories []string, activeCategory string) []CategoryTab {
	names := categories
	if len(names) == 0 || names[0] != entity.CategoryAll {
		names = append([]string{entity.CategoryAll}, names...)
	}

	known := false
	for _, name := range names {
		if name == activeCategory {
			known = true
			break
		}
	}
	if !known {
		activeCategory = entity.CategoryAll
	}

	tabs := make([]CategoryTab, len(names))
	for i, name := range names {
		tabs[i] = CategoryTab{Name: name, Active: name == activeCategory}
	}
	return tabs
}

func itemView(it entity.MenuItem) MenuItemView {
	v := MenuItemView{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		Price:        it.Price,
		IsPopular:    it.IsPopular,
		IsVegetarian: it.IsVegetarian,
	}
	if it.Image != "" {
		v.Image = &Image{
			URL: it.Image,
			Placement: model.ResolvePlacement(model.ImageField{
				Scale:     it.ImageScale,
				PositionX: it.ImagePositionX,
				PositionY: it.ImagePositionY,
			}),
		}
	}
	return v
}

// image resuelve un slot como imagen de primer plano: URL vacía omite el
// elemento salvo que el slot tenga fallback fijo; hidden lo omite siempre.
func image(cfg *model.SiteConfig, slot model.Slot) *Image {
	f := cfg.Image(slot)
	if f == nil || f.Hidden {
		return nil
	}
	url := f.URL
	if url == "" {
		fallback, ok := slotFallbacks[slot]
		if !ok {
			return nil
		}
		url = fallback
	}
	return &Image{URL: url, Placement: model.Resolve(cfg, slot)}
}

// bannerBackground resuelve el fondo del banner promocional: reutiliza el
// slot heroImage y cae a /interior.jpg cuando el slot está vacío u oculto.
func bannerBackground(cfg *model.SiteConfig) *Image {
	if img := background(cfg, model.SlotHeroImage); img != nil {
		return img
	}
	return &Image{
		URL:       "/interior.jpg",
		Placement: model.ResolvePlacement(model.ImageField{}),
		Fit:       FitCover,
	}
}

// background resuelve un slot como imagen de fondo, añadiendo el modo de
// ajuste: cover con escala 1.0, colocación explícita en cualquier otro caso.
func background(cfg *model.SiteConfig, slot model.Slot) *Image {
	img := image(cfg, slot)
	if img == nil {
		return nil
	}
	if img.Placement.Cover() {
		img.Fit = FitCover
	} else {
		img.Fit = FitZoom
	}
	return img
}
