package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dumplinghouse/storefront-api/internal/application/dto"
	"github.com/dumplinghouse/storefront-api/internal/application/render"
	appcfg "github.com/dumplinghouse/storefront-api/internal/application/siteconfig"
	"github.com/dumplinghouse/storefront-api/internal/application/usecase"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
)

// SiteHandler sirve la página pública del sitio renderizada desde el
// config vivo.
type SiteHandler struct {
	store      *appcfg.Store
	menuUC     *usecase.MenuUseCase
	categoryUC *usecase.CategoryUseCase
}

// NewSiteHandler construye el handler.
func NewSiteHandler(store *appcfg.Store, menuUC *usecase.MenuUseCase, categoryUC *usecase.CategoryUseCase) *SiteHandler {
	return &SiteHandler{store: store, menuUC: menuUC, categoryUC: categoryUC}
}

// GetPage godoc
// @Summary      Página pública del sitio
// @Tags         site
// @Produce      json
// @Param        category  query  string  false  "Categoría activa del menú"  default(Todos)
// @Success      200  {object}  render.Page
// @Router       /api/site [get]
func (h *SiteHandler) GetPage(c *fiber.Ctx) error {
	active := c.Query("category", entity.CategoryAll)

	items, err := h.menuUC.ListPublic(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	cats, err := h.categoryUC.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	page := render.Render(h.store.Live(), items, cats.Categories, active, render.Presentation{})
	return c.JSON(page)
}
