// README: Public catalog handlers and the travel-estimate endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/maps"
	"cabdesk/internal/modules/catalog"
	"cabdesk/internal/modules/fare"
	"cabdesk/internal/types"
)

type CatalogHandler struct {
	catalog  catalog.Source
	sessions *fare.Sessions
	routes   *maps.RouteService // nil when unconfigured
}

func NewCatalogHandler(cat catalog.Source, sessions *fare.Sessions, routes *maps.RouteService) *CatalogHandler {
	return &CatalogHandler{catalog: cat, sessions: sessions, routes: routes}
}

type locationView struct {
	ID   types.ID `json:"id"`
	Name string   `json:"name"`
	Lat  float64  `json:"lat"`
	Lng  float64  `json:"lng"`
}

// ListLocations serves the pickup/drop selectors on the booking widget.
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	snap, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	out := make([]locationView, 0, len(snap.Locations))
	for _, l := range snap.Locations {
		out = append(out, locationView{ID: l.ID, Name: l.Name, Lat: l.Position.Lat, Lng: l.Position.Lng})
	}
	writeJSON(c, http.StatusOK, gin.H{"locations": out})
}

// TravelEstimate returns a display-only duration/distance for a session's
// current route. The figure never feeds the fare.
func (h *CatalogHandler) TravelEstimate(c *gin.Context) {
	if h.routes == nil {
		writeError(c, http.StatusServiceUnavailable, "travel estimates not configured")
		return
	}
	view, err := h.sessions.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	if view.PickupID == "" || view.DropID == "" {
		writeError(c, http.StatusBadRequest, "route not set")
		return
	}

	snap, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	pickup, ok1 := snap.LocationByID(view.PickupID)
	drop, ok2 := snap.LocationByID(view.DropID)
	if !ok1 || !ok2 {
		writeError(c, http.StatusBadRequest, "route locations no longer in catalog")
		return
	}

	est, err := h.routes.TravelEstimate(c.Request.Context(), pickup.Position, drop.Position)
	if err != nil {
		writeError(c, http.StatusBadGateway, "travel estimate unavailable")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"duration_min": int(est.Duration.Minutes()),
		"distance":     est.Distance,
	})
}
