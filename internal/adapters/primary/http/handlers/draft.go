package handlers

import (
	"net/http"

	"vehicle-checklist-service/internal/adapters/primary/http/dto"
	"vehicle-checklist-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCatalogResponse())
}

func (h *Handler) OpenDraft(c *gin.Context) {
	d := h.draftSvc.Open()
	c.JSON(http.StatusCreated, dto.ToDraftResponse(d))
}

func (h *Handler) GetDraft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft id"})
		return
	}

	d, err := h.draftSvc.Get(id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(d))
}

func (h *Handler) UpdateDraft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft id"})
		return
	}

	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd, err := req.ToDraftUpdate()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	d, err := h.draftSvc.Update(id, upd)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(d))
}

func (h *Handler) DiscardDraft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft id"})
		return
	}

	h.draftSvc.Discard(id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) SetItemStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft id"})
		return
	}

	var req dto.SetItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var details *domain.ProblemDetails
	if domain.ItemStatus(req.Status) == domain.StatusProblem {
		details = &domain.ProblemDetails{
			Description: req.Description,
			PhotoURLs:   req.PhotoURLs,
			Uploading:   req.Uploading,
		}
	}

	d, err := h.draftSvc.SetItemStatus(id, c.Param("key"), domain.ItemStatus(req.Status), details)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(d))
}

func (h *Handler) SetProductTypes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft id"})
		return
	}

	var req dto.SetProductTypesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags := make([]domain.ProductType, 0, len(req.ProductTypes))
	for _, t := range req.ProductTypes {
		tags = append(tags, domain.ProductType(t))
	}

	d, err := h.draftSvc.SetProductTypes(id, tags)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(d))
}

func (h *Handler) AttachPhotos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft id"})
		return
	}

	var req dto.AttachPhotosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.draftSvc.AttachPhotos(c.Request.Context(), id, c.Param("key"), req.Images)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) SubmitDraft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft id"})
		return
	}

	d, err := h.draftSvc.Get(id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	rec, block, err := h.checklistSvc.Submit(c.Request.Context(), d)
	if err != nil {
		log.WithError(err).Error("checklist submission failed")
		mapDomainError(c, err)
		return
	}
	if block != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.SubmitBlockedResponse{
			Reason:   string(block.Reason),
			ItemKeys: block.ItemKeys,
		})
		return
	}

	h.draftSvc.Discard(id)
	c.JSON(http.StatusCreated, dto.ToChecklistResponse(rec))
}
