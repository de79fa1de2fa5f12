// README: Admin catalog CRUD handlers (Firebase-authenticated).
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cabdesk/internal/modules/catalog"
	"cabdesk/internal/types"
)

// CatalogStore is the mutation surface the admin handlers need;
// *catalog.Store satisfies it.
type CatalogStore interface {
	CreateLocation(ctx context.Context, l catalog.Location) error
	UpdateLocation(ctx context.Context, l catalog.Location) error
	DeleteLocation(ctx context.Context, id types.ID) error
	CreateVehicle(ctx context.Context, v catalog.Vehicle) error
	UpdateVehicle(ctx context.Context, v catalog.Vehicle) error
	DeleteVehicle(ctx context.Context, id types.ID) error
	CreateFee(ctx context.Context, f catalog.FeeEntry) error
	UpdateFee(ctx context.Context, f catalog.FeeEntry) error
	DeleteFee(ctx context.Context, id types.ID) error
}

// Invalidator drops the cached catalog snapshot after a mutation.
type Invalidator interface {
	Invalidate()
}

type AdminHandler struct {
	store CatalogStore
	cache Invalidator
}

func NewAdminHandler(store CatalogStore, cache Invalidator) *AdminHandler {
	return &AdminHandler{store: store, cache: cache}
}

type locationReq struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

func (r locationReq) toModel() catalog.Location {
	return catalog.Location{ID: types.ID(r.ID), Name: r.Name, Position: types.Point{Lat: r.Lat, Lng: r.Lng}}
}

func (h *AdminHandler) CreateLocation(c *gin.Context) {
	var req locationReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" || req.Name == "" {
		writeError(c, http.StatusBadRequest, "invalid location")
		return
	}
	if err := h.store.CreateLocation(c.Request.Context(), req.toModel()); err != nil {
		writeCatalogError(c, err)
		return
	}
	h.cache.Invalidate()
	writeJSON(c, http.StatusCreated, gin.H{"id": req.ID})
}

func (h *AdminHandler) UpdateLocation(c *gin.Context) {
	var req locationReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		writeError(c, http.StatusBadRequest, "invalid location")
		return
	}
	req.ID = c.Param("id")
	if err := h.store.UpdateLocation(c.Request.Context(), req.toModel()); err != nil {
		writeCatalogError(c, err)
		return
	}
	h.cache.Invalidate()
	writeJSON(c, http.StatusOK, gin.H{"id": req.ID})
}

func (h *AdminHandler) DeleteLocation(c *gin.Context) {
	if err := h.store.DeleteLocation(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeCatalogError(c, err)
		return
	}
	h.cache.Invalidate()
	c.Status(http.StatusNoContent)
}

type vehicleReq struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	InitialCharge int64  `json:"initial_charge"`
	PerKmPrice    int64  `json:"per_km_price"`
	MaxPassenger  int    `json:"max_passenger"`
}

func (r vehicleReq) toModel() catalog.Vehicle {
	return catalog.Vehicle{
		ID:            types.ID(r.ID),
		Name:          r.Name,
		InitialCharge: r.InitialCharge,
		PerKmPrice:    r.PerKmPrice,
		MaxPassenger:  r.MaxPassenger,
	}
}

func (h *AdminHandler) CreateVehicle(c *gin.Context) {
	var req vehicleReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" || req.Name == "" || req.MaxPassenger <= 0 {
		writeError(c, http.StatusBadRequest, "invalid vehicle")
		return
	}
	if err := h.store.CreateVehicle(c.Request.Context(), req.toModel()); err != nil {
		writeCatalogError(c, err)
		return
	}
	h.cache.Invalidate()
	writeJSON(c, http.StatusCreated, gin.H{"id": req.ID})
}

func (h *AdminHandler) UpdateVehicle(c *gin.Context) {
	var req vehicleReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.MaxPassenger <= 0 {
		writeError(c, http.StatusBadRequest, "invalid vehicle")
		return
	}
	req.ID = c.Param("id")
	if err := h.store.UpdateVehicle(c.Request.Context(), req.toModel()); err != nil {
		writeCatalogError(c, err)
		return
	}
	h.cache.Invalidate()
	writeJSON(c, http.StatusOK, gin.H{"id": req.ID})
}

func (h *AdminHandler) DeleteVehicle(c *gin.Context) {
	if err := h.store.DeleteVehicle(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeCatalogError(c, err)
		return
	}
	h.cache.Invalidate()
	c.Status(http.StatusNoContent)
}

type feeReq struct {
	ID        string `json:"id"`
	LocationA string `json:"location_a"`
	LocationB string `json:"location_b"`
	VehicleID string `json:"vehicle_id"`
	Fee       int64  `json:"fee"`
}

func (r feeReq) toModel() catalog.FeeEntry {
	return catalog.FeeEntry{
		ID:         types.ID(r.ID),
		LocationA:  r.LocationA,
		LocationB:  r.LocationB,
		Vehicle:    catalog.Vehicle{ID: types.ID(r.VehicleID)},
		Fee:        r.Fee,
		MappingKey: r.LocationA + "|" + r.LocationB + "|" + r.VehicleID,
	}
}

func (h *AdminHandler) CreateFee(c *gin.Context) {
	var req feeReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" ||
		req.LocationA == "" || req.LocationB == "" || req.VehicleID == "" {
		writeError(c, http.StatusBadRequest, "invalid fee entry")
		return
	}
	if err := h.store.CreateFee(c.Request.Context(), req.toModel()); err != nil {
		writeCatalogError(c, err)
		return
	}
	h.cache.Invalidate()
	writeJSON(c, http.StatusCreated, gin.H{"id": req.ID})
}

func (h *AdminHandler) UpdateFee(c *gin.Context) {
	var req feeReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.LocationA == "" || req.LocationB == "" || req.VehicleID == "" {
		writeError(c, http.StatusBadRequest, "invalid fee entry")
		return
	}
	req.ID = c.Param("id")
	if err := h.store.UpdateFee(c.Request.Context(), req.toModel()); err != nil {
		writeCatalogError(c, err)
		return
	}
	h.cache.Invalidate()
	writeJSON(c, http.StatusOK, gin.H{"id": req.ID})
}

func (h *AdminHandler) DeleteFee(c *gin.Context) {
	if err := h.store.DeleteFee(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeCatalogError(c, err)
		return
	}
	h.cache.Invalidate()
	c.Status(http.StatusNoContent)
}
