package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func TestCORSPreflightAllowsStatusPatch(t *testing.T) {
	app := fiber.New()
	app.Use(cors.New(corsConfig("https://dashboard.example.com")))
	app.Patch("/api/applicants/:id/status", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/applicants/a1/status", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("status = %d", resp.StatusCode)
	}
	allowed := resp.Header.Get("Access-Control-Allow-Methods")
	for _, m := range []string{"GET", "POST", "PUT", "DELETE", "PATCH"} {
		if !strings.Contains(allowed, m) {
			t.Errorf("Access-Control-Allow-Methods = %q, missing %s", allowed, m)
		}
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://dashboard.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
