package catalog

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes - attach the catalog endpoint to the router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/catalog", h.GetCatalog).Methods("GET", "OPTIONS")
	log.Println("✅ Catalog routes registered: /api/catalog")
}

// GetCatalog - every preset catalog the controls are built from. The
// payload carries both label languages; the client picks one.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"photoTypes":    PhotoTypes,
		"visualEffects": VisualEffects,
		"poses":         ModelPoses,
		"emotions":      SubjectEmotions,
		"lighting":      LightingSetups,
		"backgrounds":   Backgrounds,
		"cameraAngles":  CameraAngles,
		"cameras":       CameraModels,
		"lenses":        Lenses,
		"apertures":     Apertures,
		"focusAreas":    FocusAreas,
		"aspectRatios":  AspectRatios,
		"qualities":     Qualities,
		"defaults":      DefaultSubjectSettings(),
	})
}
