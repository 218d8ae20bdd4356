package handlers

import (
	"vehicle-checklist-service/internal/adapters/primary/http/middleware"
	"vehicle-checklist-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	draftSvc     *services.DraftService
	checklistSvc *services.ChecklistService
	vehicleSvc   *services.VehicleService
	reportSvc    *services.ReportService
	sessionSvc   *services.SessionService
}

func New(
	draftSvc *services.DraftService,
	checklistSvc *services.ChecklistService,
	vehicleSvc *services.VehicleService,
	reportSvc *services.ReportService,
	sessionSvc *services.SessionService,
) *Handler {
	return &Handler{
		draftSvc:     draftSvc,
		checklistSvc: checklistSvc,
		vehicleSvc:   vehicleSvc,
		reportSvc:    reportSvc,
		sessionSvc:   sessionSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Inspection form
	r.GET("/catalog", h.GetCatalog)
	r.GET("/vehicles", h.ListVehicles)

	// Drafts
	r.POST("/drafts", h.OpenDraft)
	r.GET("/drafts/:id", h.GetDraft)
	r.PATCH("/drafts/:id", h.UpdateDraft)
	r.DELETE("/drafts/:id", h.DiscardDraft)
	r.PUT("/drafts/:id/items/:key", h.SetItemStatus)
	r.PUT("/drafts/:id/product-types", h.SetProductTypes)
	r.POST("/drafts/:id/items/:key/photos", h.AttachPhotos)
	r.POST("/drafts/:id/submit", h.SubmitDraft)

	// Access
	r.POST("/session/unlock", h.Unlock)

	// Administration (access-gated)
	gated := r.Group("", middleware.Access(h.sessionSvc))
	gated.GET("/checklists", h.ListChecklists)
	gated.PATCH("/checklists/:id", h.UpdateChecklist)
	gated.DELETE("/checklists/:id", h.DeleteChecklist)
	gated.POST("/vehicles", h.SaveVehicle)
	gated.DELETE("/vehicles/:plate", h.DeleteVehicle)
	gated.GET("/reports", h.GetReport)
	gated.GET("/reports/export/xlsx", h.ExportXLSX)
	gated.GET("/reports/export/pdf", h.ExportPDF)
}
