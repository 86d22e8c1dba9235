package siteconfig

// Defaults devuelve el SiteConfig completo de fábrica. Todos los campos de
// texto llevan copy real y todos los colores son CSS válidos; los campos de
// imagen pueden quedar vacíos (significa "sección oculta" o "asset de
// respaldo", según el slot — ver el renderer).
func Defaults() SiteConfig {
	return SiteConfig{
		BrandName: "Dumpling House",
		SiteTitle: "Dumpling House",
		Logo:      ImageField{URL: ""},
		Copyright: "© 2024 Dumpling House. Todos los derechos reservados.",

		HeroTitle:     "EL ARTE DEL",
		HeroHighlight: "DUMPLING",
		HeroText:      "Auténticos sabores orientales preparados artesanalmente cada día. Prueba la perfección en cada mordida.",
		HeroSubtitle:  "Dumplings artesanales hechos con amor y las mejores recetas tradicionales asiáticas",
		HeroButton1:   "Ver el Menú",
		HeroButton2:   "Hacer Pedido",
		HeroImage:     ImageField{URL: "https://images.unsplash.com/photo-1496116218417-1a781b1c416c?w=1920&h=1080&fit=crop"},
		HeroBgImage:   ImageField{URL: "https://images.unsplash.com/photo-1514516348920-f319999a5e82?w=1920&h=1080&fit=crop"},

		MenuTitle:    "MENÚ TRADICIONAL",
		MenuSubtitle: "Nuestra Selección",

		BannerTitle:       "LOS DUMPLINGS MÁS FRESCOS",
		BannerDescription: "Ordene ahora y disfrute del sabor auténtico. Envíos locales y pick-up.",
		BannerChefImage:   ImageField{URL: "/chef.jpg"},

		AboutTitle:    "PASIÓN POR LA COCINA ASIÁTICA",
		AboutSubtitle: "Nuestra Historia",
		AboutUs:       "En Dumpling House, no solo servimos comida; servimos una experiencia. Cada dumpling es moldeado a mano siguiendo recetas tradicionales pasadas de generación en generación.",
		AboutImage1:   ImageField{URL: "/dumpling2.jpg"},
		AboutImage2:   ImageField{URL: "/dumpling3.jpg"},
		Stat1Title:    "Ingredientes Frescos",
		Stat2Title:    "A Mano Diario",

		FooterText:   "Trayendo lo mejor de la cocina oriental a tu mesa. Frescura, sabor y tradición en cada bocado.",
		ContactPhone: "+52 644 198 9061",
		ContactEmail: "info@dumplinghouse.es",
		Address:      "Obregón, Sonora, México",
		Coords:       &Coords{Lat: 27.4828, Lng: -109.9304},
		NavLabels:    []string{"Inicio", "Menú", "Nosotros", "Contacto"},

		PrimaryColor:     "#ffffff",
		AccentColor:      "#ff7a18",
		HighlightColor:   "#ffb86b",
		BtnGradientStart: "#ff7a18",
		BtnGradientEnd:   "#ff4b2b",

		FeatureBoxes: []FeatureBox{
			{Icon: "🍜", Title: "100% Artesanal", Subtitle: "Hechos a mano cada día"},
			{Icon: "🚚", Title: "Delivery Rápido", Subtitle: "Entrega en 30-45 min"},
			{Icon: "⭐", Title: "Calidad Premium", Subtitle: "Ingredientes frescos"},
		},
	}
}
