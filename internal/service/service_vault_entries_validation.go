package service

import (
	"context"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/validators"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// EntryServiceWrapper defines middleware composition for EntryService.
// Implementations wrap an existing EntryService to add behavior such as
// validating.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService // returns a decorated EntryService applying additional behavior
}

// EntryValidationService rejects malformed input before it reaches the
// wrapped [EntryService]. Nothing is written when validation fails.
type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

// NewEntryValidationService returns the validating decorator; attach it
// with Wrap.
func NewEntryValidationService(validator validators.Validator) EntryServiceWrapper {
	return &EntryValidationService{validator: validator}
}

func (v *EntryValidationService) Add(ctx context.Context, userID int64, input models.EntryInput, sessionToken string) (models.EntryView, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.EntryView{}, err
	}
	return v.inner.Add(ctx, userID, input, sessionToken)
}

func (v *EntryValidationService) List(ctx context.Context, userID int64) ([]models.EntryView, error) {
	return v.inner.List(ctx, userID)
}

func (v *EntryValidationService) Get(ctx context.Context, userID int64, id string) (models.EntryView, error) {
	return v.inner.Get(ctx, userID, id)
}

func (v *EntryValidationService) Update(ctx context.Context, userID int64, id string, patch models.EntryPatch, sessionToken string) (models.EntryView, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.EntryView{}, err
	}
	return v.inner.Update(ctx, userID, id, patch, sessionToken)
}

func (v *EntryValidationService) Remove(ctx context.Context, userID int64, id string) (bool, error) {
	return v.inner.Remove(ctx, userID, id)
}

func (v *EntryValidationService) Wrap(inner EntryService) EntryService {
	v.inner = inner
	return v
}
