package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/louis833/Donnachy-Electrical/internal/model"
)

const (
	errorMessageContactNotFound = "storage: contact submission not found"
	errorMessageCreateContact   = "storage: create contact submission"
	errorMessageFindContact     = "storage: find contact submission"
	errorMessageMissingID       = "storage: missing contact submission id"
)

var (
	// ErrContactNotFound indicates no submission exists for the requested identifier.
	ErrContactNotFound = errors.New(errorMessageContactNotFound)
	// ErrMissingContactID indicates a lookup was attempted without an identifier.
	ErrMissingContactID = errors.New(errorMessageMissingID)
)

// ContactRepository persists contact submissions. Records are append-only:
// the repository offers no update or delete operations.
type ContactRepository struct {
	database *gorm.DB
}

// NewContactRepository creates a ContactRepository backed by the given database.
func NewContactRepository(database *gorm.DB) *ContactRepository {
	return &ContactRepository{database: database}
}

// CreateContact stores a validated field set as a new submission, assigning a
// unique identifier and creation timestamp. Callers are responsible for
// validating the input first; the repository does not re-check constraints.
func (repository *ContactRepository) CreateContact(ctx context.Context, input model.ContactInput) (model.ContactSubmission, error) {
	submission := model.ContactSubmission{
		ID:          NewID(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		ServiceType: input.ServiceType,
		Message:     input.Message,
	}

	if createErr := repository.database.WithContext(ctx).Create(&submission).Error; createErr != nil {
		return model.ContactSubmission{}, fmt.Errorf("%s: %w", errorMessageCreateContact, createErr)
	}

	return submission, nil
}

// FindContactByID returns the stored submission for the given identifier, or
// ErrContactNotFound when no such record exists. Not exposed over HTTP;
// retained for operator tooling.
func (repository *ContactRepository) FindContactByID(ctx context.Context, submissionID string) (model.ContactSubmission, error) {
	trimmedID := strings.TrimSpace(submissionID)
	if trimmedID == "" {
		return model.ContactSubmission{}, ErrMissingContactID
	}

	var submission model.ContactSubmission
	findErr := repository.database.WithContext(ctx).First(&submission, "id = ?", trimmedID).Error
	if findErr != nil {
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return model.ContactSubmission{}, ErrContactNotFound
		}
		return model.ContactSubmission{}, fmt.Errorf("%s: %w", errorMessageFindContact, findErr)
	}

	return submission, nil
}
