package domain

import "strings"

// BlockReason enumerates why a checklist cannot be submitted. Reasons
// are structured so callers can render locale-specific messages.
type BlockReason string

const (
	BlockMissingDriverName         BlockReason = "missing_driver_name"
	BlockMissingLicensePlate       BlockReason = "missing_license_plate"
	BlockNoProductTypes            BlockReason = "no_product_types"
	BlockProblemWithoutDescription BlockReason = "problem_without_description"
	BlockMissingTemperatures       BlockReason = "missing_temperatures"
	BlockDeclarationNotAccepted    BlockReason = "declaration_not_accepted"
	BlockUnconfirmedItems          BlockReason = "unconfirmed_items"
	BlockUploadsPending            BlockReason = "uploads_pending"
)

// SubmitBlock is the first failing submission rule. ItemKeys names the
// offending items for the per-item reasons.
type SubmitBlock struct {
	Reason   BlockReason `json:"reason"`
	ItemKeys []string    `json:"item_keys,omitempty"`
}

// CanSubmit decides whether a checklist is submittable. It returns nil
// when every rule passes, otherwise the first failing rule. The checks
// run in a fixed order; only the first failure is reported. The final
// uploads-pending check sits after the seven field rules so their
// relative order is stable.
func CanSubmit(c *Checklist, uploadingKeys, unconfirmedKeys []string) *SubmitBlock {
	if strings.TrimSpace(c.DriverName) == "" {
		return &SubmitBlock{Reason: BlockMissingDriverName}
	}
	if strings.TrimSpace(c.LicensePlate) == "" {
		return &SubmitBlock{Reason: BlockMissingLicensePlate}
	}
	if len(c.ProductTypes) == 0 {
		return &SubmitBlock{Reason: BlockNoProductTypes}
	}

	var undescribed []string
	for _, p := range c.Problems {
		if strings.TrimSpace(p.Description) == "" {
			undescribed = append(undescribed, p.ItemKey)
		}
	}
	if len(undescribed) > 0 {
		return &SubmitBlock{Reason: BlockProblemWithoutDescription, ItemKeys: undescribed}
	}

	if !c.HasProductType(ProductNone) {
		if c.InitialTemperature == nil || c.ProgrammedTemperature == nil {
			return &SubmitBlock{Reason: BlockMissingTemperatures}
		}
	}

	if !c.DeclarationAccepted {
		return &SubmitBlock{Reason: BlockDeclarationNotAccepted}
	}

	if len(unconfirmedKeys) > 0 {
		return &SubmitBlock{Reason: BlockUnconfirmedItems, ItemKeys: unconfirmedKeys}
	}

	if len(uploadingKeys) > 0 {
		return &SubmitBlock{Reason: BlockUploadsPending, ItemKeys: uploadingKeys}
	}

	return nil
}
