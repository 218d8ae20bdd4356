package handlers

import (
	"errors"
	"net/http"

	"vehicle-checklist-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrDraftNotFound),
		errors.Is(err, domain.ErrChecklistNotFound),
		errors.Is(err, domain.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrUnknownItem),
		errors.Is(err, domain.ErrInvalidItemStatus),
		errors.Is(err, domain.ErrNoProblemRecorded),
		errors.Is(err, domain.ErrInvalidProductType),
		errors.Is(err, domain.ErrInvalidVehicleType),
		errors.Is(err, domain.ErrInvalidPlate),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrEmptyDateRange),
		errors.Is(err, domain.ErrRangeTooWide):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Access errors
	case errors.Is(err, domain.ErrInvalidAccessCode):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	// Upstream gateway errors
	case errors.Is(err, domain.ErrUploadFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
