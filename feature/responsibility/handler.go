package responsibility

import (
	"errors"

	"govdoc-manager/core/identity"
	"govdoc-manager/core/logger"
	"govdoc-manager/core/middleware/identitymw"
	"govdoc-manager/core/versioning"
	"govdoc-manager/feature/responsibility/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the responsibility document.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the responsibility routes. Reads require VO
// membership; writes require the owner or manager role.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/responsibility")
	group.Get("/", identitymw.RequireAnyRole(identity.RoleIMSUser), h.HandleGetResponsibility)
	group.Put("/", identitymw.RequireAnyRole(identity.RoleIMSOwner, identity.RoleIMSManager), h.HandleUpdateResponsibility)
}

// HandleGetResponsibility returns the current responsibility document.
// @Summary Get Responsibility
// @Description Get the current responsibility document, optionally with its full version history.
// @Tags responsibility
// @Produce json
// @Param allVersions query boolean false "Also return all prior versions"
// @Success 200 {object} models.Responsibility "Responsibility document"
// @Failure 403 {object} map[string]string "Permission Denied"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /responsibility [get]
func (h *Handler) HandleGetResponsibility(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	responsibility, found, err := h.service.Get(c.Context(), c.QueryBool("allVersions"))
	if err != nil {
		l.Error("Responsibility read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no responsibility version exists",
		})
	}

	return c.JSON(responsibility)
}

// HandleUpdateResponsibility appends a new responsibility version.
// @Summary Update Responsibility
// @Description Submit the full responsibility document; a new immutable version is appended.
// @Tags responsibility
// @Accept json
// @Produce json
// @Param responsibility body models.Responsibility true "Responsibility document"
// @Success 201 {object} versioning.Created "Version Created"
// @Failure 400 {object} map[string]string "Invalid Document"
// @Failure 403 {object} map[string]string "Permission Denied"
// @Failure 409 {object} map[string]string "Version Conflict"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /responsibility [put]
func (h *Handler) HandleUpdateResponsibility(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var submitted models.Responsibility
	if err := c.BodyParser(&submitted); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed document: " + err.Error(),
		})
	}

	created, err := h.service.CreateVersion(c.Context(), submitted, identitymw.Author(c))
	if err != nil {
		switch {
		case errors.Is(err, versioning.ErrValidation):
			l.Warn("Responsibility update rejected", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, versioning.ErrConflict):
			l.Warn("Responsibility update conflicted", zap.Error(err))
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			l.Error("Responsibility update failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	l.Info("Responsibility version created",
		zap.Uint("id", created.ID),
		zap.Uint("version", created.Version))
	return c.Status(fiber.StatusCreated).JSON(created)
}
