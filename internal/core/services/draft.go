package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"vehicle-checklist-service/internal/core/domain"
	ports "vehicle-checklist-service/internal/core/ports/output"
)

// DraftUpdate carries the editable header and footer fields of an open
// draft. Nil pointers leave a field untouched; ClearTemperatures resets
// both temperature fields to null.
type DraftUpdate struct {
	Date                  *time.Time
	DriverName            *string
	VehicleType           *domain.VehicleClass
	LicensePlate          *string
	InitialTemperature    *float64
	ProgrammedTemperature *float64
	ClearTemperatures     bool
	GeneralObservations   *string
	DeclarationAccepted   *bool
}

// PhotoUploadResult aggregates the outcome of one photo batch. Failed
// uploads never abort the rest of the batch.
type PhotoUploadResult struct {
	URLs      []string `json:"urls"`
	Attempted int      `json:"attempted"`
	Failed    int      `json:"failed"`
}

// DraftService keeps the open drafts in memory. Each draft belongs to
// one session; the mutex only guards the registry against concurrent
// HTTP requests.
type DraftService struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*domain.Draft
	images ports.ImageHost
}

func NewDraftService(images ports.ImageHost) *DraftService {
	return &DraftService{
		drafts: make(map[uuid.UUID]*domain.Draft),
		images: images,
	}
}

// Open creates a fresh draft with default values and a new id.
func (s *DraftService) Open() *domain.Draft {
	d := domain.NewDraft(time.Now())
	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()
	return d
}

// Get returns the open draft with the given id.
func (s *DraftService) Get(id uuid.UUID) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	return d, nil
}

// Discard drops a draft without side effects.
func (s *DraftService) Discard(id uuid.UUID) {
	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
}

// Update applies header/footer field edits.
func (s *DraftService) Update(id uuid.UUID, upd DraftUpdate) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}

	if upd.VehicleType != nil && !upd.VehicleType.IsValid() {
		return nil, domain.ErrInvalidVehicleType
	}

	if upd.Date != nil {
		d.Date = *upd.Date
	}
	if upd.DriverName != nil {
		d.DriverName = *upd.DriverName
	}
	if upd.VehicleType != nil {
		d.VehicleType = *upd.VehicleType
	}
	if upd.LicensePlate != nil {
		d.LicensePlate = *upd.LicensePlate
	}
	if upd.ClearTemperatures {
		d.InitialTemperature = nil
		d.ProgrammedTemperature = nil
	} else {
		if upd.InitialTemperature != nil {
			d.InitialTemperature = upd.InitialTemperature
		}
		if upd.ProgrammedTemperature != nil {
			d.ProgrammedTemperature = upd.ProgrammedTemperature
		}
	}
	if upd.GeneralObservations != nil {
		d.GeneralObservations = *upd.GeneralObservations
	}
	if upd.DeclarationAccepted != nil {
		d.DeclarationAccepted = *upd.DeclarationAccepted
	}
	return d, nil
}

// SetItemStatus transitions one inspection item.
func (s *DraftService) SetItemStatus(id uuid.UUID, key string, status domain.ItemStatus, details *domain.ProblemDetails) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	if err := d.SetItemStatus(key, status, details); err != nil {
		return nil, err
	}
	return d, nil
}

// SetProductTypes replaces the product-tag set.
func (s *DraftService) SetProductTypes(id uuid.UUID, tags []domain.ProductType) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	if err := d.SetProductTypes(tags); err != nil {
		return nil, err
	}
	return d, nil
}

// AttachPhotos uploads each image independently and records the public
// URLs on the item's problem. The item is flagged as uploading for the
// duration so submission stays blocked; failures are reported in
// aggregate, never aborting the remaining uploads.
func (s *DraftService) AttachPhotos(ctx context.Context, id uuid.UUID, key string, images []string) (*PhotoUploadResult, error) {
	s.mu.Lock()
	d, ok := s.drafts[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrDraftNotFound
	}
	if d.ProblemFor(key) == nil {
		s.mu.Unlock()
		return nil, domain.ErrNoProblemRecorded
	}
	if err := d.MarkUploading(key, true); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	result := &PhotoUploadResult{Attempted: len(images)}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.images.Upload(ctx, img)
		if err != nil || url == "" {
			log.WithError(err).WithField("item_key", key).Warn("photo upload failed")
			result.Failed++
			continue
		}
		urls = append(urls, url)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The draft may have been discarded while uploads were in flight;
	// the stale result is then dropped.
	d, ok = s.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	for _, url := range urls {
		if err := d.AppendPhotoURL(key, url); err != nil {
			return nil, err
		}
	}
	if err := d.MarkUploading(key, false); err != nil {
		return nil, err
	}
	result.URLs = urls
	return result, nil
}
