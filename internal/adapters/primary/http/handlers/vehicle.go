package handlers

import (
	"net/http"

	"vehicle-checklist-service/internal/adapters/primary/http/dto"
	"vehicle-checklist-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list vehicles failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, dto.ToVehicleResponse(v))
	}
	c.JSON(http.StatusOK, dto.ListVehiclesResponse{Items: items, Total: len(items)})
}

func (h *Handler) SaveVehicle(c *gin.Context) {
	var req dto.SaveVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := h.vehicleSvc.Save(c.Request.Context(), req.LicensePlate, domain.VehicleClass(req.VehicleType))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVehicleResponse(v))
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	if err := h.vehicleSvc.Delete(c.Request.Context(), c.Param("plate")); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
