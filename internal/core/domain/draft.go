package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProblemDetails carries the defect data supplied when an item is
// flagged as a problem.
type ProblemDetails struct {
	Description string
	PhotoURLs   []string
	Uploading   bool
}

// itemState is the single tagged status per item. A problem record
// exists only while status is exactly StatusProblem, which makes the
// legacy ambiguous boolean/problem combinations unrepresentable.
type itemState struct {
	status  ItemStatus
	problem *Problem
}

// Draft is one inspection in progress. All mutation is in-memory and
// synchronous; no method performs I/O.
type Draft struct {
	ID                    uuid.UUID
	Date                  time.Time
	DriverName            string
	VehicleType           VehicleClass
	LicensePlate          string
	InitialTemperature    *float64
	ProgrammedTemperature *float64
	GeneralObservations   string
	DeclarationAccepted   bool
	CreatedAt             time.Time

	items        map[string]itemState
	productTypes []ProductType
	uploading    map[string]bool
}

// NewDraft creates a fresh draft with default field values and a new id.
func NewDraft(now time.Time) *Draft {
	return &Draft{
		ID:        uuid.New(),
		Date:      dateOnly(now),
		CreatedAt: now,
		items:     make(map[string]itemState, len(Catalog)),
		uploading: make(map[string]bool),
	}
}

// SetItemStatus transitions one item. For StatusProblem, details must
// carry the defect description (and optionally photo URLs and the
// uploading flag). Any other status clears a stored problem.
func (d *Draft) SetItemStatus(key string, status ItemStatus, details *ProblemDetails) error {
	if _, ok := ItemByKey(key); !ok {
		return ErrUnknownItem
	}
	if !status.IsValid() {
		return ErrInvalidItemStatus
	}

	if status != StatusProblem {
		d.items[key] = itemState{status: status}
		return nil
	}

	p := &Problem{ItemKey: key}
	if details != nil {
		p.Description = details.Description
		p.PhotoURLs = append([]string(nil), details.PhotoURLs...)
		if details.Uploading {
			d.uploading[key] = true
		}
	}
	d.items[key] = itemState{status: StatusProblem, problem: p}
	return nil
}

// ItemStatus returns the current status of key; items never touched are
// not_evaluated. Unknown keys are also reported as not_evaluated.
func (d *Draft) ItemStatus(key string) ItemStatus {
	if st, ok := d.items[key]; ok {
		return st.status
	}
	return StatusNotEvaluated
}

// ProblemFor returns a copy of the problem recorded against key, or nil.
func (d *Draft) ProblemFor(key string) *Problem {
	st, ok := d.items[key]
	if !ok || st.problem == nil {
		return nil
	}
	p := *st.problem
	p.PhotoURLs = append([]string(nil), st.problem.PhotoURLs...)
	return &p
}

// AppendPhotoURL records a confirmed upload against the item's problem.
func (d *Draft) AppendPhotoURL(key, url string) error {
	st, ok := d.items[key]
	if !ok || st.problem == nil {
		return ErrNoProblemRecorded
	}
	st.problem.PhotoURLs = append(st.problem.PhotoURLs, url)
	return nil
}

// SetProductTypes replaces the product-tag set. Selecting the "none"
// sentinel clears every other tag and both temperature fields;
// selecting any other tag while "none" is held removes "none" first.
func (d *Draft) SetProductTypes(tags []ProductType) error {
	for _, t := range tags {
		if !t.IsValid() {
			return ErrInvalidProductType
		}
	}

	hadNone := d.hasProductType(ProductNone)
	wantsNone := false
	for _, t := range tags {
		if t == ProductNone {
			wantsNone = true
			break
		}
	}

	onlyNone := wantsNone && len(tags) == 1
	if onlyNone || (wantsNone && !hadNone) {
		d.productTypes = []ProductType{ProductNone}
		d.InitialTemperature = nil
		d.ProgrammedTemperature = nil
		return nil
	}

	set := make([]ProductType, 0, len(tags))
	seen := make(map[ProductType]bool, len(tags))
	for _, t := range tags {
		if t == ProductNone || seen[t] {
			continue
		}
		seen[t] = true
		set = append(set, t)
	}
	d.productTypes = set
	return nil
}

// ProductTypes returns the current tag set.
func (d *Draft) ProductTypes() []ProductType {
	return append([]ProductType(nil), d.productTypes...)
}

func (d *Draft) hasProductType(t ProductType) bool {
	for _, p := range d.productTypes {
		if p == t {
			return true
		}
	}
	return false
}

// MarkUploading toggles the transient per-item upload indicator. It is
// independent of the item's status and only gates submission.
func (d *Draft) MarkUploading(key string, flag bool) error {
	if _, ok := ItemByKey(key); !ok {
		return ErrUnknownItem
	}
	if flag {
		d.uploading[key] = true
	} else {
		delete(d.uploading, key)
	}
	return nil
}

// UploadingKeys lists items with an outstanding upload, in catalog order.
func (d *Draft) UploadingKeys() []string {
	var keys []string
	for _, it := range Catalog {
		if d.uploading[it.Key] {
			keys = append(keys, it.Key)
		}
	}
	return keys
}

// UnconfirmedKeys lists items stuck in unconfirmed_problem, in catalog
// order.
func (d *Draft) UnconfirmedKeys() []string {
	var keys []string
	for _, it := range Catalog {
		if d.items[it.Key].status == StatusUnconfirmedProblem {
			keys = append(keys, it.Key)
		}
	}
	return keys
}

// Problems returns the recorded problems in catalog order.
func (d *Draft) Problems() []Problem {
	var problems []Problem
	for _, it := range Catalog {
		if p := d.ProblemFor(it.Key); p != nil {
			problems = append(problems, *p)
		}
	}
	return problems
}

// Snapshot projects the draft into a Checklist record without stamping
// completion. Used for validation and previews.
func (d *Draft) Snapshot() *Checklist {
	items := make(map[string]bool, len(Catalog))
	for _, it := range Catalog {
		items[it.Key] = d.items[it.Key].status == StatusOK
	}
	return &Checklist{
		ID:                    d.ID,
		Date:                  d.Date,
		DriverName:            d.DriverName,
		VehicleType:           d.VehicleType,
		LicensePlate:          d.LicensePlate,
		Items:                 items,
		InitialTemperature:    d.InitialTemperature,
		ProgrammedTemperature: d.ProgrammedTemperature,
		ProductTypes:          d.ProductTypes(),
		Problems:              d.Problems(),
		GeneralObservations:   d.GeneralObservations,
		DeclarationAccepted:   d.DeclarationAccepted,
		CreatedAt:             d.CreatedAt,
	}
}

// Finalize stamps completion and returns the immutable record.
func (d *Draft) Finalize(now time.Time) *Checklist {
	rec := d.Snapshot()
	rec.CompletedAt = now
	return rec
}

func dateOnly(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
