package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"todo_service/internal/models"
	"todo_service/internal/repository"
)

// ActivityFilter narrows an activity listing. Zero times mean "unbounded".
type ActivityFilter struct {
	From time.Time
	To   time.Time
	Type string
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

type ActivityService struct {
	eventRepo repository.Events
}

func NewActivityService(eventRepo repository.Events) *ActivityService {
	return &ActivityService{eventRepo: eventRepo}
}

var _ Activity = (*ActivityService)(nil)

// List returns the caller's audit events, oldest first.
func (s *ActivityService) List(ctx context.Context, userID int, f ActivityFilter) ([]models.TaskEvent, error) {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return nil, errInvalidTimeRange
	}
	return s.eventRepo.ListByUser(ctx, userID,
		normalizeToUTC(f.From),
		normalizeToUTC(f.To),
		strings.ToUpper(strings.TrimSpace(f.Type)),
	)
}

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
