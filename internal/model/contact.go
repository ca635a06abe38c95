package model

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

const (
	ServiceTypeResidential = "residential"
	ServiceTypeCommercial  = "commercial"
	ServiceTypeMaintenance = "maintenance"
	ServiceTypeFinancing   = "financing"
	ServiceTypeOther       = "other"

	contactNameMaxLength    = 200
	contactEmailMaxLength   = 320
	contactPhoneMaxLength   = 50
	contactMessageMaxLength = 4000

	fieldNameName        = "name"
	fieldNameEmail       = "email"
	fieldNamePhone       = "phone"
	fieldNameServiceType = "serviceType"
	fieldNameMessage     = "message"

	messageNameRequired        = "Name is required"
	messageNameTooLong         = "Name must be 200 characters or fewer"
	messageEmailRequired       = "Email is required"
	messageEmailInvalid        = "Please enter a valid email address"
	messageEmailTooLong        = "Email must be 320 characters or fewer"
	messagePhoneTooLong        = "Phone must be 50 characters or fewer"
	messageServiceTypeRequired = "Please select a service type"
	messageServiceTypeInvalid  = "Service type must be one of: %s"
	messageMessageRequired     = "Message is required"
	messageMessageTooLong      = "Message must be 4000 characters or fewer"
)

var serviceTypeLabels = map[string]string{
	ServiceTypeResidential: "Residential Installation",
	ServiceTypeCommercial:  "Commercial Installation",
	ServiceTypeMaintenance: "Maintenance & Support",
	ServiceTypeFinancing:   "Financing Options",
	ServiceTypeOther:       "Other",
}

var orderedServiceTypes = []string{
	ServiceTypeResidential,
	ServiceTypeCommercial,
	ServiceTypeMaintenance,
	ServiceTypeFinancing,
	ServiceTypeOther,
}

// ContactSubmission is one quote request captured from the website contact
// form. Submissions are append-only: the service never updates or deletes a
// stored record.
type ContactSubmission struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"not null;size:200"`
	Email       string    `gorm:"not null;size:320"`
	Phone       string    `gorm:"size:50"`
	ServiceType string    `gorm:"not null;size:20;index"`
	Message     string    `gorm:"not null;size:4000"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// ContactInput holds the raw field values of a contact-form request before
// validation.
type ContactInput struct {
	Name        string
	Email       string
	Phone       string
	ServiceType string
	Message     string
}

// FieldError describes a single violated constraint on a named input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Normalized returns a copy of the input with surrounding whitespace removed
// and the email address lowercased.
func (input ContactInput) Normalized() ContactInput {
	return ContactInput{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:       strings.TrimSpace(input.Phone),
		ServiceType: strings.TrimSpace(input.ServiceType),
		Message:     strings.TrimSpace(input.Message),
	}
}

// Validate checks the input against the contact-form constraints and returns
// one FieldError per violation, in the order the constraints are evaluated.
// An empty result means the input is acceptable for storage.
func (input ContactInput) Validate() []FieldError {
	var fieldErrors []FieldError

	switch {
	case input.Name == "":
		fieldErrors = append(fieldErrors, FieldError{Field: fieldNameName, Message: messageNameRequired})
	case len(input.Name) > contactNameMaxLength:
		fieldErrors = append(fieldErrors, FieldError{Field: fieldNameName, Message: messageNameTooLong})
	}

	switch {
	case input.Email == "":
		fieldErrors = append(fieldErrors, FieldError{Field: fieldNameEmail, Message: messageEmailRequired})
	case len(input.Email) > contactEmailMaxLength:
		fieldErrors = append(fieldErrors, FieldError{Field: fieldNameEmail, Message: messageEmailTooLong})
	case !isPlausibleEmailAddress(input.Email):
		fieldErrors = append(fieldErrors, FieldError{Field: fieldNameEmail, Message: messageEmailInvalid})
	}

	if len(input.Phone) > contactPhoneMaxLength {
		fieldErrors = append(fieldErrors, FieldError{Field: fieldNamePhone, Message: messagePhoneTooLong})
	}

	switch {
	case input.ServiceType == "":
		fieldErrors = append(fieldErrors, FieldError{Field: fieldNameServiceType, Message: messageServiceTypeRequired})
	case !IsKnownServiceType(input.ServiceType):
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldNameServiceType,
			Message: fmt.Sprintf(messageServiceTypeInvalid, strings.Join(orderedServiceTypes, ", ")),
		})
	}

	switch {
	case input.Message == "":
		fieldErrors = append(fieldErrors, FieldError{Field: fieldNameMessage, Message: messageMessageRequired})
	case len(input.Message) > contactMessageMaxLength:
		fieldErrors = append(fieldErrors, FieldError{Field: fieldNameMessage, Message: messageMessageTooLong})
	}

	return fieldErrors
}

// IsKnownServiceType reports whether the value belongs to the service-type
// enumeration.
func IsKnownServiceType(serviceType string) bool {
	_, known := serviceTypeLabels[serviceType]
	return known
}

// ServiceTypeLabel returns the human-readable label for a service type. The
// raw value is returned unchanged when it is outside the enumeration.
func ServiceTypeLabel(serviceType string) string {
	label, known := serviceTypeLabels[serviceType]
	if !known {
		return serviceType
	}
	return label
}

// AllowedServiceTypes lists the service-type enumeration in declaration
// order.
func AllowedServiceTypes() []string {
	allowed := make([]string, len(orderedServiceTypes))
	copy(allowed, orderedServiceTypes)
	return allowed
}

func isPlausibleEmailAddress(candidate string) bool {
	parsed, parseErr := mail.ParseAddress(candidate)
	if parseErr != nil {
		return false
	}
	return parsed.Address == candidate
}
