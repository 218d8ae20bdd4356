package domain

import "errors"

// ============================================================================
// Checklist Errors
// ============================================================================

var (
	ErrDraftNotFound     = errors.New("draft checklist not found")
	ErrChecklistNotFound = errors.New("checklist not found")
	ErrUnknownItem       = errors.New("unknown inspection item")
	ErrInvalidItemStatus = errors.New("invalid item status")
	ErrNoProblemRecorded = errors.New("no problem recorded for item")
)

// Validation errors
var (
	ErrInvalidProductType = errors.New("invalid product type")
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
	ErrInvalidPlate       = errors.New("license plate is required")
	ErrInvalidDate        = errors.New("invalid date")
)

// ============================================================================
// Vehicle Registry Errors
// ============================================================================

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// ============================================================================
// Report Errors
// ============================================================================

var (
	ErrEmptyDateRange = errors.New("report interval start must not be after end")
	ErrRangeTooWide   = errors.New("report interval exceeds 90 days")
)

// ============================================================================
// Gateway Errors
// ============================================================================

var (
	ErrPermissionDenied  = errors.New("permission denied")
	ErrUploadFailed      = errors.New("image upload failed")
	ErrInvalidAccessCode = errors.New("invalid access code")
)
