package validate

import (
	"bytes"
	"catering_manager/model"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByIdStoresNumericParam(t *testing.T) {
	app := fiber.New()
	app.Get("/customer/:customerId", GetById("customerId"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Locals("inputId")})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/customer/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 42, body["id"])
}

func TestGetByIdRejectsNonNumericParam(t *testing.T) {
	app := fiber.New()
	app.Get("/customer/:customerId", GetById("customerId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/customer/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeletePassesIdsThrough(t *testing.T) {
	app := fiber.New()
	app.Delete("/feedback", Delete(), func(c *fiber.Ctx) error {
		input := c.Locals("deleteIds").(model.ArrayId)
		return c.JSON(fiber.Map{"count": len(input.IDs)})
	})

	payload, err := json.Marshal(model.ArrayId{IDs: []uint{1, 2, 3}})
	require.NoError(t, err)
	req := httptest.NewRequest("DELETE", "/feedback", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body["count"])
}

func TestDeleteRejectsEmptyIdList(t *testing.T) {
	app := fiber.New()
	app.Delete("/feedback", Delete(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	payload, err := json.Marshal(model.ArrayId{})
	require.NoError(t, err)
	req := httptest.NewRequest("DELETE", "/feedback", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
