package archive

import (
	"errors"

	"govdoc-manager/core/identity"
	"govdoc-manager/core/logger"
	"govdoc-manager/core/middleware/identitymw"
	"govdoc-manager/core/versioning"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for document archiving.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/archive")
	group.Post("/:kind", identitymw.RequireAnyRole(identity.RoleIMSOwner, identity.RoleIMSManager), h.HandleArchive)
	group.Delete("/:kind", identitymw.RequireAnyRole(identity.RoleIMSOwner, identity.RoleIMSManager), h.HandlePrune)
}

// HandleArchive snapshots the version history of one document kind.
// @Summary Archive Document History
// @Description Serialize the full version history of a document kind and store it in object storage.
// @Tags archive
// @Produce json
// @Param kind path string true "Document kind (e.g. 'governance')"
// @Success 201 {object} archive.Result "Archive Written"
// @Failure 400 {object} map[string]string "Unknown Kind"
// @Failure 403 {object} map[string]string "Permission Denied"
// @Failure 404 {object} map[string]string "Nothing To Archive"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/{kind} [post]
func (h *Handler) HandleArchive(c *fiber.Ctx) error {
	kind := c.Params("kind")
	l := logger.WithRayID(h.service.logger, c)

	result, found, err := h.service.Archive(c.Context(), kind)
	if err != nil {
		if errors.Is(err, versioning.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Archive failed", zap.String("kind", kind), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no versions to archive",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandlePrune removes old archives of one document kind.
// @Summary Prune Document Archives
// @Description Remove old archives of a document kind, keeping only the most recent ones.
// @Tags archive
// @Produce json
// @Param kind path string true "Document kind (e.g. 'governance')"
// @Param keep query integer false "Number of archives to keep" default(10)
// @Success 200 {object} map[string][]string "Removed Archives"
// @Failure 400 {object} map[string]string "Unknown Kind"
// @Failure 403 {object} map[string]string "Permission Denied"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/{kind} [delete]
func (h *Handler) HandlePrune(c *fiber.Ctx) error {
	kind := c.Params("kind")
	keep := c.QueryInt("keep", 10)
	l := logger.WithRayID(h.service.logger, c)

	removed, err := h.service.Prune(c.Context(), kind, keep)
	if err != nil {
		if errors.Is(err, versioning.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Prune failed", zap.String("kind", kind), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"removed": removed})
}
