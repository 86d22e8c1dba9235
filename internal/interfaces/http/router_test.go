package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcfg "github.com/dumplinghouse/storefront-api/internal/application/siteconfig"
	"github.com/dumplinghouse/storefront-api/internal/application/usecase"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
	model "github.com/dumplinghouse/storefront-api/internal/domain/siteconfig"
	apphttp "github.com/dumplinghouse/storefront-api/internal/interfaces/http"
	"github.com/dumplinghouse/storefront-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (implementan los puertos del dominio)
// ──────────────────────────────────────────────────────────────────────────────

type memSiteConfigRepo struct {
	raw []byte
}

func (r *memSiteConfigRepo) Get(context.Context) ([]byte, error) { return r.raw, nil }

func (r *memSiteConfigRepo) Put(_ context.Context, cfg model.SiteConfig) error {
	b, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	r.raw = b
	return nil
}

type memMenuRepo struct {
	items map[string]*entity.MenuItem
}

func newMemMenuRepo() *memMenuRepo { return &memMenuRepo{items: map[string]*entity.MenuItem{}} }

func (r *memMenuRepo) Create(_ context.Context, item *entity.MenuItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memMenuRepo) GetByID(_ context.Context, id string) (*entity.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *memMenuRepo) List(context.Context) ([]*entity.MenuItem, error) {
	out := make([]*entity.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memMenuRepo) Update(_ context.Context, item *entity.MenuItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memMenuRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memMenuRepo) CountByCategory(_ context.Context, category string) (int, error) {
	n := 0
	for _, item := range r.items {
		if item.Category == category {
			n++
		}
	}
	return n, nil
}

type memCategoryRepo struct {
	cats []*entity.Category
}

func (r *memCategoryRepo) List(context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, len(r.cats))
	copy(out, r.cats)
	return out, nil
}

func (r *memCategoryRepo) Create(_ context.Context, cat *entity.Category) error {
	cp := *cat
	r.cats = append(r.cats, &cp)
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, name string) error {
	for i, cat := range r.cats {
		if cat.Name == name {
			r.cats = append(r.cats[:i], r.cats[i+1:]...)
			return nil
		}
	}
	return nil
}

// buildEditorApp arma la aplicación completa con repos en memoria. Solo se
// ejercitan las rutas del sitio y del editor.
func buildEditorApp(t *testing.T) (*fiber.App, *memSiteConfigRepo) {
	t.Helper()

	configRepo := &memSiteConfigRepo{}
	menuRepo := newMemMenuRepo()
	categoryRepo := &memCategoryRepo{}

	store := appcfg.NewStore(configRepo, nil, logger.Nop(), time.Second)
	store.Initialize(context.Background())
	manager := appcfg.NewManager(store, time.Second, nil)

	menuUC := usecase.NewMenuUseCase(menuRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, menuRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:      store,
		Manager:    manager,
		MenuUC:     menuUC,
		CategoryUC: categoryUC,
		JWTSecret:  testJWTSecret,
	})
	return app, configRepo
}

func doJSON(t *testing.T, app *fiber.App, method, target, token, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]interface{}
	if strings.Contains(resp.Header.Get("Content-Type"), "json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	resp.Body.Close()
	return resp, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo del editor: borrador → vista previa → publicación → sitio
// ──────────────────────────────────────────────────────────────────────────────

func TestEditorFlow_BorradorNoTocaElSitioPublico(t *testing.T) {
	app, _ := buildEditorApp(t)
	token := tokenForRole(t, apphttp.RoleSeller)

	// El borrador abre desde el config vivo (defaults en este arranque).
	resp, draft := doJSON(t, app, http.MethodGet, "/api/admin/site-config/draft", token, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dumpling House", draft["brandName"])

	// Editar el borrador.
	resp, draft = doJSON(t, app, http.MethodPatch, "/api/admin/site-config/draft", token,
		`{"brandName":"Casa Jiaozi"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Casa Jiaozi", draft["brandName"])

	// El sitio público sigue sirviendo el config vivo, sin el cambio.
	resp, page := doJSON(t, app, http.MethodGet, "/api/site", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	nav, _ := page["nav"].(map[string]interface{})
	require.NotNil(t, nav)
	assert.Equal(t, "Dumpling House", nav["brandName"],
		"editar el borrador no debe afectar la página pública")

	// La vista previa sí refleja el borrador.
	resp, preview := doJSON(t, app, http.MethodGet, "/api/admin/site-config/preview", token, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	previewNav, _ := preview["nav"].(map[string]interface{})
	require.NotNil(t, previewNav)
	assert.Equal(t, "Casa Jiaozi", previewNav["brandName"])
	pres, _ := preview["presentation"].(map[string]interface{})
	require.NotNil(t, pres)
	assert.Equal(t, 0.5, pres["scale"], "la vista previa usa la escala reducida por defecto")
	assert.Equal(t, true, pres["embedded"])
}

func TestEditorFlow_PublicarActualizaElSitio(t *testing.T) {
	app, configRepo := buildEditorApp(t)
	token := tokenForRole(t, apphttp.RoleSeller)

	_, _ = doJSON(t, app, http.MethodPatch, "/api/admin/site-config/draft", token,
		`{"brandName":"Casa Jiaozi","heroTitle":"NUEVA CARTA"}`)

	resp, status := doJSON(t, app, http.MethodPost, "/api/admin/site-config/publish", token, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", status["state"])

	// La publicación escribió en la persistencia.
	assert.NotEmpty(t, configRepo.raw, "la publicación debe persistir el config")

	// Y la página pública ya sirve el nuevo config.
	_, page := doJSON(t, app, http.MethodGet, "/api/site", "", "")
	nav, _ := page["nav"].(map[string]interface{})
	require.NotNil(t, nav)
	assert.Equal(t, "Casa Jiaozi", nav["brandName"])
}

func TestEditorFlow_ParcialInvalidoRechazado(t *testing.T) {
	app, _ := buildEditorApp(t)
	token := tokenForRole(t, apphttp.RoleSeller)

	resp, body := doJSON(t, app, http.MethodPatch, "/api/admin/site-config/draft", token,
		`{"campoInexistente":true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_FIELD", body["code"],
		"una clave desconocida rechaza el parcial completo")

	// El borrador quedó intacto.
	_, draft := doJSON(t, app, http.MethodGet, "/api/admin/site-config/draft", token, "")
	assert.Equal(t, "Dumpling House", draft["brandName"])
}

func TestEditorFlow_DescartarRealineaConElVivo(t *testing.T) {
	app, _ := buildEditorApp(t)
	token := tokenForRole(t, apphttp.RoleSeller)

	_, _ = doJSON(t, app, http.MethodPatch, "/api/admin/site-config/draft", token,
		`{"brandName":"Efímero"}`)
	resp, draft := doJSON(t, app, http.MethodPost, "/api/admin/site-config/draft/discard", token, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dumpling House", draft["brandName"])
}

func TestEditorFlow_RutasAdminRequierenToken(t *testing.T) {
	app, _ := buildEditorApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/admin/site-config/draft", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Un cliente autenticado tampoco entra.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/admin/site-config/draft",
		tokenForRole(t, "customer"), "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSitePublico_MenuYCategorias(t *testing.T) {
	app, _ := buildEditorApp(t)
	token := tokenForRole(t, apphttp.RoleSeller)

	// Crear categoría y plato desde el panel.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/categories", token,
		`{"name":"Entradas"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, created := doJSON(t, app, http.MethodPost, "/api/admin/menu", token,
		`{"name":"Gyoza","description":"6 piezas","price":"120","category":"Entradas"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, created["id"])

	// El sitio público lista la categoría y el plato.
	_, page := doJSON(t, app, http.MethodGet, "/api/site", "", "")
	menuSection, _ := page["menu"].(map[string]interface{})
	require.NotNil(t, menuSection)

	items, _ := menuSection["items"].([]interface{})
	require.Len(t, items, 1)
	first, _ := items[0].(map[string]interface{})
	assert.Equal(t, "Gyoza", first["name"])

	cats, _ := menuSection["categories"].([]interface{})
	require.NotEmpty(t, cats)
	firstCat, _ := cats[0].(map[string]interface{})
	assert.Equal(t, entity.CategoryAll, firstCat["name"], "Todos siempre va al frente")
}
