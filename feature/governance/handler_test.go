package governance_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"govdoc-manager/core/identity"
	"govdoc-manager/core/middleware/identitymw"
	"govdoc-manager/feature/governance"
	"govdoc-manager/feature/governance/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

const (
	memberEntitlement = "urn:mace:egi.eu:group:vo.tools.egi.eu:role=member#aai.egi.eu"
	staffEntitlement  = "urn:mace:egi.eu:group:vo.tools.egi.eu:ims:role=member#aai.egi.eu"
	ownerEntitlement  = "urn:mace:egi.eu:group:vo.tools.egi.eu:ims:role=ims-owner#aai.egi.eu"
)

func setupApp(t *testing.T) (*fiber.App, *governance.Service) {
	t.Helper()

	svc, _ := setupService(t)
	h := governance.NewHandler(svc)

	app := fiber.New()
	app.Use(identitymw.New(identity.Config{
		VO:        "vo.tools.egi.eu",
		Group:     "ims",
		OwnerRole: "ims-owner",
	}))
	h.RegisterRoutes(app)

	return app, svc
}

func TestHandleGetGovernance(t *testing.T) {
	app, svc := setupApp(t)

	t.Run("Anonymous is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/governance", nil)
		resp, err := app.Test(req, 2000)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("Empty lineage", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/governance", nil)
		req.Header.Set(identitymw.HeaderEntitlements, memberEntitlement)
		resp, err := app.Test(req, 2000)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	_, err := svc.CreateVersion(context.Background(), models.Governance{Title: sp("Charter")}, author)
	assert.NoError(t, err)

	t.Run("Member reads the document", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/governance", nil)
		req.Header.Set(identitymw.HeaderEntitlements, memberEntitlement)
		resp, err := app.Test(req, 2000)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body models.Governance
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Governance", body.Kind)
		assert.Equal(t, "Charter", *body.Title)
		assert.Equal(t, uint(1), body.Version)
	})
}

func TestHandleUpdateGovernance(t *testing.T) {
	app, _ := setupApp(t)

	doPut := func(t *testing.T, body string, entitlements ...string) int {
		t.Helper()
		req := httptest.NewRequest("PUT", "/governance", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(identitymw.HeaderUserID, author.CheckinUserID)
		req.Header.Set(identitymw.HeaderFullName, author.FullName)
		if len(entitlements) > 0 {
			req.Header.Set(identitymw.HeaderEntitlements, strings.Join(entitlements, ","))
		}
		resp, err := app.Test(req, 2000)
		assert.NoError(t, err)
		return resp.StatusCode
	}

	doc := `{"title": "Charter", "annexes": [{"body": "Board", "interfaces": [{"interfacesWith": "Internal"}]}]}`

	t.Run("Member may not write", func(t *testing.T) {
		status := doPut(t, doc, memberEntitlement, staffEntitlement)
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("Owner role requires group membership", func(t *testing.T) {
		status := doPut(t, doc, memberEntitlement, ownerEntitlement)
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("Owner writes a version", func(t *testing.T) {
		status := doPut(t, doc, memberEntitlement, staffEntitlement, ownerEntitlement)
		assert.Equal(t, fiber.StatusCreated, status)
	})

	t.Run("Malformed body", func(t *testing.T) {
		status := doPut(t, `{"title": 7}`, memberEntitlement, staffEntitlement, ownerEntitlement)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("Unknown interface category", func(t *testing.T) {
		status := doPut(t, `{"annexes": [{"interfaces": [{"interfacesWith": "Sideways"}]}]}`,
			memberEntitlement, staffEntitlement, ownerEntitlement)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}
