package handlers

import (
	"fmt"
	"net/http"

	"vehicle-checklist-service/internal/adapters/primary/http/dto"
	"vehicle-checklist-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetReport(c *gin.Context) {
	r, f, ok := reportParams(c)
	if !ok {
		return
	}

	report, err := h.reportSvc.Report(c.Request.Context(), r, f)
	if err != nil {
		log.WithError(err).Error("report build failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

func (h *Handler) ExportXLSX(c *gin.Context) {
	r, f, ok := reportParams(c)
	if !ok {
		return
	}

	data, name, err := h.reportSvc.ExportXLSX(c.Request.Context(), r, f)
	if err != nil {
		log.WithError(err).Error("xlsx export failed")
		mapDomainError(c, err)
		return
	}
	serveAttachment(c, data, name, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (h *Handler) ExportPDF(c *gin.Context) {
	r, f, ok := reportParams(c)
	if !ok {
		return
	}

	data, name, err := h.reportSvc.ExportPDF(c.Request.Context(), r, f)
	if err != nil {
		log.WithError(err).Error("pdf export failed")
		mapDomainError(c, err)
		return
	}
	serveAttachment(c, data, name, "application/pdf")
}

func reportParams(c *gin.Context) (domain.DateRange, domain.AnomalyFilter, bool) {
	r, err := dto.ParseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		mapDomainError(c, err)
		return domain.DateRange{}, "", false
	}

	f := domain.AnomalyFilter(c.DefaultQuery("filter", string(domain.AnomalyAll)))
	if !f.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown anomaly filter %q", f)})
		return domain.DateRange{}, "", false
	}
	return r, f, true
}

func serveAttachment(c *gin.Context, data []byte, name, contentType string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}
