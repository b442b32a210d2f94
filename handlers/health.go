package handlers

import (
	"net/http"

	"github.com/akinalp/vynk/pkg"
)

// Home godoc
// GET /
func Home(w http.ResponseWriter, _ *http.Request) {
	pkg.JSON(w, http.StatusOK, map[string]string{
		"message": "VYNK Backend API",
		"status":  "running",
	})
}

// Health godoc
// GET /health
func Health(w http.ResponseWriter, _ *http.Request) {
	pkg.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
