package routes

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/zemengames/bingo-live/controllers"
)

func TestSetupRoutesRegistersSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	SetupRoutes(r,
		controllers.NewSessionController(nil),
		controllers.NewRankingController(nil),
		controllers.NewAdminController(nil, nil),
	)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/sessions",
		"POST /api/sessions/join",
		"GET /api/sessions/:id",
		"POST /api/sessions/:id/open",
		"POST /api/sessions/:id/start",
		"POST /api/sessions/:id/advance",
		"POST /api/sessions/:id/finish",
		"POST /api/sessions/:id/draws",
		"GET /api/sessions/:id/draws",
		"POST /api/sessions/:id/claims",
		"GET /api/sessions/:id/winners",
		"POST /api/sessions/:id/prizes/:prize_id/forfeit",
		"GET /api/ranks",
		"GET /api/ranks/:user_id",
		"GET /api/ranks/:user_id/titles",
		"POST /api/admin/reap",
		"POST /api/admin/ranks/:user_id/credit",
	}
	for _, want := range expected {
		if !registered[want] {
			t.Fatalf("route %s is not registered", want)
		}
	}
}
