package governance

import (
	"errors"

	"govdoc-manager/core/identity"
	"govdoc-manager/core/logger"
	"govdoc-manager/core/middleware/identitymw"
	"govdoc-manager/core/versioning"
	"govdoc-manager/feature/governance/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the governance document.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the governance routes. Reads require VO
// membership; writes require the owner or manager role.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/governance")
	group.Get("/", identitymw.RequireAnyRole(identity.RoleIMSUser), h.HandleGetGovernance)
	group.Put("/", identitymw.RequireAnyRole(identity.RoleIMSOwner, identity.RoleIMSManager), h.HandleUpdateGovernance)
}

// HandleGetGovernance returns the current governance document.
// @Summary Get Governance
// @Description Get the current governance document, optionally with its full version history.
// @Tags governance
// @Produce json
// @Param allVersions query boolean false "Also return all prior versions"
// @Success 200 {object} models.Governance "Governance document"
// @Failure 403 {object} map[string]string "Permission Denied"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /governance [get]
func (h *Handler) HandleGetGovernance(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	governance, found, err := h.service.Get(c.Context(), c.QueryBool("allVersions"))
	if err != nil {
		l.Error("Governance read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no governance version exists",
		})
	}

	return c.JSON(governance)
}

// HandleUpdateGovernance appends a new governance version.
// @Summary Update Governance
// @Description Submit the full governance document; a new immutable version is appended.
// @Tags governance
// @Accept json
// @Produce json
// @Param governance body models.Governance true "Governance document"
// @Success 201 {object} versioning.Created "Version Created"
// @Failure 400 {object} map[string]string "Invalid Document"
// @Failure 403 {object} map[string]string "Permission Denied"
// @Failure 409 {object} map[string]string "Version Conflict"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /governance [put]
func (h *Handler) HandleUpdateGovernance(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var submitted models.Governance
	if err := c.BodyParser(&submitted); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed document: " + err.Error(),
		})
	}

	created, err := h.service.CreateVersion(c.Context(), submitted, identitymw.Author(c))
	if err != nil {
		switch {
		case errors.Is(err, versioning.ErrValidation):
			l.Warn("Governance update rejected", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, versioning.ErrConflict):
			l.Warn("Governance update conflicted", zap.Error(err))
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			l.Error("Governance update failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	l.Info("Governance version created",
		zap.Uint("id", created.ID),
		zap.Uint("version", created.Version))
	return c.Status(fiber.StatusCreated).JSON(created)
}
