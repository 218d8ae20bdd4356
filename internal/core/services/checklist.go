package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"vehicle-checklist-service/internal/core/domain"
	ports "vehicle-checklist-service/internal/core/ports/output"
)

// ChecklistService owns the submission pipeline and the completed
// checklist collection.
type ChecklistService struct {
	repo     ports.ChecklistRepository
	notifier ports.Notifier
	cache    ports.ReportCache // optional
}

func NewChecklistService(repo ports.ChecklistRepository, notifier ports.Notifier, cache ports.ReportCache) *ChecklistService {
	return &ChecklistService{repo: repo, notifier: notifier, cache: cache}
}

// Submit finalizes a draft: validate, stamp completion, persist, reload
// the report collection, send the notification email. A non-nil
// SubmitBlock means validation failed and nothing was contacted. A
// failure at any later step aborts the remaining steps; there is no
// compensating rollback, and the draft is left untouched so the caller
// can retry (the repository upserts by id, so a retry after a partial
// failure overwrites rather than duplicates).
func (s *ChecklistService) Submit(ctx context.Context, d *domain.Draft) (*domain.Checklist, *domain.SubmitBlock, error) {
	if block := domain.CanSubmit(d.Snapshot(), d.UploadingKeys(), d.UnconfirmedKeys()); block != nil {
		return nil, block, nil
	}

	rec := d.Finalize(time.Now())
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, nil, err
	}

	if err := s.refresh(ctx); err != nil {
		return nil, nil, err
	}

	if err := s.notifier.Send(ctx, RenderTemplateFields(rec)); err != nil {
		return nil, nil, err
	}

	return rec, nil, nil
}

// refresh reloads the full collection from the store and rewrites the
// last-good cache.
func (s *ChecklistService) refresh(ctx context.Context) error {
	records, err := s.repo.List(ctx, nil)
	if err != nil {
		return err
	}
	s.cachePut(ctx, records)
	return nil
}

// List fetches checklists, optionally date-bounded, newest first. When
// the remote fetch fails the last-good cached collection is served
// instead; the cache is only ever read on that path.
func (s *ChecklistService) List(ctx context.Context, r *domain.DateRange) ([]*domain.Checklist, error) {
	records, err := s.repo.List(ctx, r)
	if err != nil {
		if cached := s.cacheGet(ctx); cached != nil {
			log.WithError(err).Warn("remote checklist fetch failed, serving cached collection")
			if r != nil {
				return domain.FilterChecklists(cached, *r, domain.AnomalyAll), nil
			}
			return cached, nil
		}
		return nil, err
	}
	if r == nil {
		s.cachePut(ctx, records)
	}
	return records, nil
}

func (s *ChecklistService) Update(ctx context.Context, id uuid.UUID, upd ports.ChecklistUpdate) error {
	return s.repo.Update(ctx, id, upd)
}

func (s *ChecklistService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *ChecklistService) cachePut(ctx context.Context, records []*domain.Checklist) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, records); err != nil {
		log.WithError(err).Warn("report cache write failed")
	}
}

func (s *ChecklistService) cacheGet(ctx context.Context) []*domain.Checklist {
	if s.cache == nil {
		return nil
	}
	records, err := s.cache.Get(ctx)
	if err != nil {
		log.WithError(err).Warn("report cache read failed")
		return nil
	}
	return records
}
