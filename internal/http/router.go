// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"cabdesk/internal/http/handlers"
	"cabdesk/internal/http/middleware"
	"cabdesk/internal/infra"
	"cabdesk/internal/maps"
	"cabdesk/internal/modules/booking"
	"cabdesk/internal/modules/catalog"
	"cabdesk/internal/modules/fare"
)

type RouterDeps struct {
	Catalog      *catalog.Service
	CatalogStore *catalog.Store
	Sessions     *fare.Sessions
	Booking      *booking.Service
	Routes       *maps.RouteService // nil disables travel estimates
	Verifier     infra.TokenVerifier

	// AllowedOrigins is the CORS allow-list for the site frontend.
	AllowedOrigins []string
}

// NewRouter builds the full API surface. The returned handler has CORS
// applied; admin routes are guarded by Firebase auth and the admin role.
func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog, deps.Sessions, deps.Routes)
	r.GET("/api/catalog/locations", catalogHandler.ListLocations)

	quoteHandler := handlers.NewQuoteHandler(deps.Sessions)
	r.POST("/api/quotes", quoteHandler.Create)
	r.GET("/api/quotes/:id", quoteHandler.Get)
	r.PUT("/api/quotes/:id/route", quoteHandler.SetRoute)
	r.PUT("/api/quotes/:id/vehicle", quoteHandler.SelectVehicle)
	r.PUT("/api/quotes/:id/trip-type", quoteHandler.SetTripType)
	r.POST("/api/quotes/:id/passengers", quoteHandler.AdjustPassengers)
	r.GET("/api/quotes/:id/travel-estimate", catalogHandler.TravelEstimate)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	r.POST("/api/bookings", bookingHandler.Submit)
	r.GET("/api/bookings/:id", bookingHandler.Get)

	adminHandler := handlers.NewAdminHandler(deps.CatalogStore, deps.Catalog)
	admin := r.Group("/api/admin",
		middleware.Auth(deps.Verifier),
		middleware.RequireRole("admin"),
	)
	admin.POST("/locations", adminHandler.CreateLocation)
	admin.PUT("/locations/:id", adminHandler.UpdateLocation)
	admin.DELETE("/locations/:id", adminHandler.DeleteLocation)
	admin.POST("/vehicles", adminHandler.CreateVehicle)
	admin.PUT("/vehicles/:id", adminHandler.UpdateVehicle)
	admin.DELETE("/vehicles/:id", adminHandler.DeleteVehicle)
	admin.POST("/fees", adminHandler.CreateFee)
	admin.PUT("/fees/:id", adminHandler.UpdateFee)
	admin.DELETE("/fees/:id", adminHandler.DeleteFee)

	return cors.New(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)
}
