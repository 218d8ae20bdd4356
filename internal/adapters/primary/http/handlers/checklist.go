package handlers

import (
	"net/http"

	"vehicle-checklist-service/internal/adapters/primary/http/dto"
	"vehicle-checklist-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ListChecklists(c *gin.Context) {
	var r *domain.DateRange
	if start, end := c.Query("start"), c.Query("end"); start != "" || end != "" {
		parsed, err := dto.ParseDateRange(start, end)
		if err != nil {
			mapDomainError(c, err)
			return
		}
		r = &parsed
	}

	records, err := h.checklistSvc.List(c.Request.Context(), r)
	if err != nil {
		log.WithError(err).Error("list checklists failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ChecklistResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.ToChecklistResponse(rec))
	}
	c.JSON(http.StatusOK, dto.ListChecklistsResponse{Items: items, Total: len(items)})
}

func (h *Handler) UpdateChecklist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checklist id"})
		return
	}

	var req dto.UpdateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.checklistSvc.Update(c.Request.Context(), id, req.ToChecklistUpdate()); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteChecklist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checklist id"})
		return
	}

	if err := h.checklistSvc.Delete(c.Request.Context(), id); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
