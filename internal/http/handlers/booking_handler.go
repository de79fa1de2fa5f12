// README: Booking submission handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/modules/booking"
	"cabdesk/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

func (h *BookingHandler) Submit(c *gin.Context) {
	var req booking.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.booking.Submit(c.Request.Context(), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"booking_id": id, "status": booking.StatusReceived})
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.booking.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"booking_id":   b.ID,
		"status":       b.Status,
		"pickup_name":  b.PickupName,
		"drop_name":    b.DropName,
		"vehicle_name": b.VehicleName,
		"trip_type":    b.TripType,
		"base_fee":     b.BaseFee,
		"total_fee":    b.TotalFee,
		"currency":     b.Currency,
	})
}
