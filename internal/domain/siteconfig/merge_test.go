package siteconfig_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dumplinghouse/storefront-api/internal/domain"
	"github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Defaults / Merge / Patch / Clone
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaults_CamposPoblados(t *testing.T) {
	cfg := siteconfig.Defaults()

	assert.NotEmpty(t, cfg.BrandName)
	assert.NotEmpty(t, cfg.HeroTitle)
	assert.NotEmpty(t, cfg.AboutUs)
	assert.NotEmpty(t, cfg.FooterText)
	assert.NotEmpty(t, cfg.ContactPhone)
	assert.NotEmpty(t, cfg.Copyright)

	// Todos los colores del tema deben ser CSS válidos (hex).
	for _, color := range []string{
		cfg.PrimaryColor, cfg.AccentColor, cfg.HighlightColor,
		cfg.BtnGradientStart, cfg.BtnGradientEnd,
	} {
		assert.Regexp(t, `^#[0-9a-fA-F]{6}$`, color)
	}

	assert.Len(t, cfg.NavLabels, 4)
	// El logo vacío es legítimo: el renderer usa el asset de respaldo.
	assert.Empty(t, cfg.Logo.URL)
}

func TestMerge_ClavesAusentesConservanBase(t *testing.T) {
	base := siteconfig.Defaults()
	out, err := siteconfig.Merge(base, []byte(`{"heroTitle":"NUEVO"}`))
	require.NoError(t, err)

	assert.Equal(t, "NUEVO", out.HeroTitle)
	assert.Equal(t, base.HeroHighlight, out.HeroHighlight, "las claves ausentes conservan el valor de base")
	assert.Equal(t, base.ContactPhone, out.ContactPhone)
}

// Un parcial que trae solo la escala de un slot conserva las compañeras
// (url, posición, rotación): los sub-objetos se mezclan clave a clave.
func TestMerge_CompanerasDeTransformacionIndependientes(t *testing.T) {
	base := siteconfig.Defaults()
	base.HeroImage.PositionY = ptr(30)

	out, err := siteconfig.Merge(base, []byte(`{"heroImage":{"scale":1.5}}`))
	require.NoError(t, err)

	assert.Equal(t, 1.5, out.HeroImage.Scale)
	assert.Equal(t, base.HeroImage.URL, out.HeroImage.URL, "la URL del slot no debe perderse")
	require.NotNil(t, out.HeroImage.PositionY)
	assert.Equal(t, 30.0, *out.HeroImage.PositionY, "la posición Y previa debe conservarse")
}

func TestMerge_ClavesDesconocidasSeIgnoran(t *testing.T) {
	base := siteconfig.Defaults()
	out, err := siteconfig.Merge(base, []byte(`{"legacyField":true,"brandName":"Casa Jade"}`))
	require.NoError(t, err)
	assert.Equal(t, "Casa Jade", out.BrandName)
}

func TestMerge_JSONMalformadoDevuelveBase(t *testing.T) {
	base := siteconfig.Defaults()
	out, err := siteconfig.Merge(base, []byte(`{"brandName":`))
	assert.Error(t, err)
	assert.Equal(t, base.BrandName, out.BrandName, "ante error, Merge devuelve base sin cambios")
}

func TestMerge_ParcialVacio(t *testing.T) {
	base := siteconfig.Defaults()
	out, err := siteconfig.Merge(base, nil)
	require.NoError(t, err)
	assert.Equal(t, base.HeroTitle, out.HeroTitle)
}

// El blob serializado es el registro completo: un campo limpiado a vacío
// viaja como "" (nunca se omite) y la mezcla sobre Defaults() al recargar
// lo respeta en lugar de resucitar el default.
func TestMerge_CamposLimpiadosNoResucitanDefaults(t *testing.T) {
	cfg := siteconfig.Defaults()
	cfg.HeroBgImage.URL = ""
	cfg.Copyright = ""
	cfg.NavLabels = nil
	cfg.Coords = nil

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)

	out, err := siteconfig.Merge(siteconfig.Defaults(), raw)
	require.NoError(t, err)

	assert.Empty(t, out.HeroBgImage.URL, "un heroBgImage limpiado debe seguir vacío tras recargar")
	assert.Empty(t, out.Copyright, "un copyright limpiado debe seguir vacío tras recargar")
	assert.Nil(t, out.NavLabels)
	assert.Nil(t, out.Coords)
}

// Patch es la frontera estricta de edición: claves desconocidas y tipos
// incorrectos se rechazan con ErrInvalidFieldValue.
func TestPatch_ClaveDesconocidaRechazada(t *testing.T) {
	base := siteconfig.Defaults()
	_, err := siteconfig.Patch(base, []byte(`{"heroTitel":"typo"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidFieldValue)
}

func TestPatch_TipoIncorrectoRechazado(t *testing.T) {
	base := siteconfig.Defaults()
	_, err := siteconfig.Patch(base, []byte(`{"heroImage":{"scale":"grande"}}`))
	assert.ErrorIs(t, err, domain.ErrInvalidFieldValue, "una escala no numérica nunca debe llegar al renderer")
}

// Dos ediciones seguidas sobre campos hermanos no se pisan entre sí.
func TestPatch_EdicionesSecuencialesNoSePisan(t *testing.T) {
	draft := siteconfig.Defaults()
	draft.HeroImage.PositionY = ptr(70)

	draft, err := siteconfig.Patch(draft, []byte(`{"heroImage":{"scale":1.5}}`))
	require.NoError(t, err)
	draft, err = siteconfig.Patch(draft, []byte(`{"heroImage":{"positionX":10}}`))
	require.NoError(t, err)

	assert.Equal(t, 1.5, draft.HeroImage.Scale)
	require.NotNil(t, draft.HeroImage.PositionX)
	assert.Equal(t, 10.0, *draft.HeroImage.PositionX)
	require.NotNil(t, draft.HeroImage.PositionY)
	assert.Equal(t, 70.0, *draft.HeroImage.PositionY, "positionY debe quedar en su valor previo")
}

func TestClone_NoComparteMemoria(t *testing.T) {
	base := siteconfig.Defaults()
	base.HeroImage.PositionX = ptr(10)

	copia := base.Clone()
	*copia.HeroImage.PositionX = 90
	copia.NavLabels[0] = "Home"
	copia.Coords.Lat = 0

	assert.Equal(t, 10.0, *base.HeroImage.PositionX, "mutar la copia no debe tocar el original")
	assert.Equal(t, "Inicio", base.NavLabels[0])
	assert.NotZero(t, base.Coords.Lat)
}

func TestImage_SlotDesconocidoDevuelveNil(t *testing.T) {
	cfg := siteconfig.Defaults()
	assert.Nil(t, cfg.Image(siteconfig.Slot("noExiste")))
}
