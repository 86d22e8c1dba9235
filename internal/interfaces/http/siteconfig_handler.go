package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dumplinghouse/storefront-api/internal/application/dto"
	"github.com/dumplinghouse/storefront-api/internal/application/render"
	appcfg "github.com/dumplinghouse/storefront-api/internal/application/siteconfig"
	"github.com/dumplinghouse/storefront-api/internal/application/usecase"
	"github.com/dumplinghouse/storefront-api/internal/domain"
	"github.com/dumplinghouse/storefront-api/internal/domain/entity"
)

// previewScale escala cosmética fija de la vista previa incrustada.
const previewScale = 0.5

// SiteConfigHandler maneja el editor del sitio del operador: borrador por
// sesión, vista previa sincronizada y publicación.
type SiteConfigHandler struct {
	manager    *appcfg.Manager
	menuUC     *usecase.MenuUseCase
	categoryUC *usecase.CategoryUseCase
}

// NewSiteConfigHandler construye el handler.
func NewSiteConfigHandler(manager *appcfg.Manager, menuUC *usecase.MenuUseCase, categoryUC *usecase.CategoryUseCase) *SiteConfigHandler {
	return &SiteConfigHandler{manager: manager, menuUC: menuUC, categoryUC: categoryUC}
}

// GetDraft godoc
// @Summary      Borrador actual de la sesión del operador
// @Tags         site-config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  siteconfig.SiteConfig
// @Router       /api/admin/site-config/draft [get]
func (h *SiteConfigHandler) GetDraft(c *fiber.Ctx) error {
	session := h.manager.Session(GetUserID(c))
	return c.JSON(session.Buffer.Snapshot())
}

// PatchDraft godoc
// @Summary      Aplicar ediciones al borrador
// @Description  Recibe un parcial JSON con los campos editados. Validación
// @Description  estricta: una clave desconocida o un tipo incorrecto rechazan
// @Description  el parcial completo sin tocar el borrador.
// @Tags         site-config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  siteconfig.SiteConfig
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/site-config/draft [patch]
func (h *SiteConfigHandler) PatchDraft(c *fiber.Ctx) error {
	session := h.manager.Session(GetUserID(c))
	next, err := session.Buffer.Apply(c.Body())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFieldValue) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FIELD", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "parcial JSON inválido"})
	}
	return c.JSON(next)
}

// DiscardDraft godoc
// @Summary      Descartar las ediciones no publicadas
// @Tags         site-config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  siteconfig.SiteConfig
// @Router       /api/admin/site-config/draft/discard [post]
func (h *SiteConfigHandler) DiscardDraft(c *fiber.Ctx) error {
	session := h.manager.Session(GetUserID(c))
	return c.JSON(session.Buffer.Discard())
}

// GetPreview godoc
// @Summary      Vista previa renderizada del borrador
// @Description  Mismo renderer que la página pública; solo cambia la
// @Description  presentación (escala reducida, incrustada).
// @Tags         site-config
// @Security     Bearer
// @Produce      json
// @Param        category  query  string   false  "Categoría activa del menú"  default(Todos)
// @Param        scale     query  number   false  "Escala cosmética"           default(0.5)
// @Success      200  {object}  render.Page
// @Router       /api/admin/site-config/preview [get]
func (h *SiteConfigHandler) GetPreview(c *fiber.Ctx) error {
	session := h.manager.Session(GetUserID(c))
	active := c.Query("category", entity.CategoryAll)

	scale := previewScale
	if raw := c.Query("scale"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			scale = v
		}
	}

	items, err := h.menuUC.ListPublic(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	cats, err := h.categoryUC.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	page := render.Render(session.Buffer.Snapshot(), items, cats.Categories, active, render.Presentation{
		Scale:    scale,
		Embedded: true,
	})
	return c.JSON(page)
}

// Publish godoc
// @Summary      Publicar el borrador como nuevo config vivo
// @Description  Un disparo con otra publicación en vuelo en esta sesión es un
// @Description  no-op (devuelve el estado publishing). El borrador no se
// @Description  reinicia: tras éxito ya coincide con el vivo, tras fallo queda
// @Description  intacto para reintentar.
// @Tags         site-config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  siteconfig.PublishStatus
// @Router       /api/admin/site-config/publish [post]
func (h *SiteConfigHandler) Publish(c *fiber.Ctx) error {
	session := h.manager.Session(GetUserID(c))
	status := session.Publisher.Trigger(c.Context(), session.Buffer.Snapshot())
	return c.JSON(status)
}

// PublishStatus godoc
// @Summary      Estado del control de publicación de la sesión
// @Tags         site-config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  siteconfig.PublishStatus
// @Router       /api/admin/site-config/publish/status [get]
func (h *SiteConfigHandler) PublishStatus(c *fiber.Ctx) error {
	session := h.manager.Session(GetUserID(c))
	return c.JSON(session.Publisher.Status())
}
