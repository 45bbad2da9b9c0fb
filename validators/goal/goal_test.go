package goalValidator

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newValidatorApp mounts a validator in front of a terminal handler that
// echoes whatever the validator stored in Locals.
func newValidatorApp(validator fiber.Handler, localsKey string) *fiber.App {
	app := fiber.New()
	app.All("/", validator, func(c *fiber.Ctx) error {
		return c.JSON(c.Locals(localsKey))
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func getQuery(t *testing.T, app *fiber.App, query string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/"+query, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateGoalEmptyTitleIsBadRequest(t *testing.T) {
	app := newValidatorApp(CreateGoal(), "validatedGoal")

	resp := postJSON(t, app, fiber.Map{"title": ""})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	fields, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "title")
}

func TestCreateGoalRejectsUnknownStatus(t *testing.T) {
	app := newValidatorApp(CreateGoal(), "validatedGoal")

	resp := postJSON(t, app, fiber.Map{"title": "Learn Go", "status": "archived"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateGoalAcceptsPlainDate(t *testing.T) {
	app := newValidatorApp(CreateGoal(), "validatedGoal")

	resp := postJSON(t, app, fiber.Map{"title": "Learn Go", "targetDate": "2026-12-31"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListGoalsUnsetLimitGetsDefaultPageSize(t *testing.T) {
	app := newValidatorApp(ListGoals(), "validatedGoalList")

	resp := getQuery(t, app, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var parsed ListGoalsRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, defaultGoalPageSize, parsed.Limit)
}

func TestListGoalsRejectsOversizedLimit(t *testing.T) {
	app := newValidatorApp(ListGoals(), "validatedGoalList")

	resp := getQuery(t, app, "?limit=200")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListGoalsKeepsExplicitLimit(t *testing.T) {
	app := newValidatorApp(ListGoals(), "validatedGoalList")

	resp := getQuery(t, app, "?limit=5&offset=10")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var parsed ListGoalsRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, 5, parsed.Limit)
	assert.Equal(t, 10, parsed.Offset)
}
