// README: Quote session handlers: route, vehicle, trip type, passenger counters.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/modules/fare"
	"cabdesk/internal/types"
)

type QuoteHandler struct {
	sessions *fare.Sessions
}

func NewQuoteHandler(sessions *fare.Sessions) *QuoteHandler {
	return &QuoteHandler{sessions: sessions}
}

func (h *QuoteHandler) Create(c *gin.Context) {
	view, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, view)
}

func (h *QuoteHandler) Get(c *gin.Context) {
	view, err := h.sessions.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, view)
}

type setRouteReq struct {
	PickupID string `json:"pickup_id"`
	DropID   string `json:"drop_id"`
}

func (h *QuoteHandler) SetRoute(c *gin.Context) {
	var req setRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.PickupID == "" || req.DropID == "" {
		writeError(c, http.StatusBadRequest, "missing pickup_id or drop_id")
		return
	}
	view, err := h.sessions.SetRoute(c.Request.Context(), types.ID(c.Param("id")),
		types.ID(req.PickupID), types.ID(req.DropID))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, view)
}

type selectVehicleReq struct {
	VehicleID string `json:"vehicle_id"`
}

func (h *QuoteHandler) SelectVehicle(c *gin.Context) {
	var req selectVehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.VehicleID == "" {
		writeError(c, http.StatusBadRequest, "missing vehicle_id")
		return
	}
	view, err := h.sessions.SelectVehicle(c.Request.Context(), types.ID(c.Param("id")), types.ID(req.VehicleID))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, view)
}

type tripTypeReq struct {
	TripType string `json:"trip_type"`
}

func (h *QuoteHandler) SetTripType(c *gin.Context) {
	var req tripTypeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	view, err := h.sessions.SetTripType(c.Request.Context(), types.ID(c.Param("id")), fare.TripType(req.TripType))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, view)
}

type passengersReq struct {
	Field string `json:"field"` // "adults" or "children"
	Op    string `json:"op"`    // "increment" or "decrement"
}

func (h *QuoteHandler) AdjustPassengers(c *gin.Context) {
	var req passengersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	view, err := h.sessions.AdjustPassengers(c.Request.Context(), types.ID(c.Param("id")), req.Field, req.Op)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, view)
}
