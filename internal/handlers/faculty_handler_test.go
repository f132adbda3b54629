package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Registers every faculty route the server wires up, so a handler
// method losing its gin signature shows up here.
func TestFacultyHandlerRouteRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewFacultyHandler(nil, nil, nil)
	r := gin.New()

	r.GET("/faculty/profiles", h.ListProfiles)
	r.GET("/faculty/profiles/:id", h.ProfileById)
	r.GET("/faculty/wallet", h.MyBalances)
	r.GET("/faculty/dashboard", h.Stats)
	r.GET("/faculty/me/details", h.MyProfile)
	r.PUT("/faculty/me/details", h.UpdateMyProfile)

	paths := make(map[string]bool)
	for _, route := range r.Routes() {
		paths[route.Method+" "+route.Path] = true
	}

	assert.True(t, paths["GET /faculty/dashboard"])
	assert.True(t, paths["GET /faculty/wallet"])
	assert.True(t, paths["PUT /faculty/me/details"])
}
