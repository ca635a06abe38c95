package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/louis833/Donnachy-Electrical/internal/model"
)

const (
	ownerSubjectPattern    = "New Solar Quote Request - %s"
	customerSubjectPattern = "Thank you for your solar quote request - %s"

	ownerMessageTemplateText = `<div style="max-width: 600px; margin: 0 auto; padding: 20px; font-family: Arial, sans-serif;">
  <h2 style="color: #FFC107; margin-bottom: 20px;">New Quote Request from {{.BusinessName}} Website</h2>

  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
    <h3 style="margin-top: 0; color: #000;">Contact Details</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    {{if .Phone}}<p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>{{end}}
    <p><strong>Service Type:</strong> {{.ServiceTypeLabel}}</p>
  </div>

  <div style="background: #fff; padding: 20px; border: 1px solid #dee2e6; border-radius: 8px;">
    <h3 style="margin-top: 0; color: #000;">Message</h3>
    <p style="white-space: pre-wrap; line-height: 1.6;">{{.Message}}</p>
  </div>

  <div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #dee2e6; color: #6c757d; font-size: 12px;">
    <p>This email was sent from the {{.BusinessName}} website contact form.</p>
    <p>Received at: {{.ReceivedAt}}</p>
  </div>
</div>`

	customerMessageTemplateText = `<div style="max-width: 600px; margin: 0 auto; padding: 20px; font-family: Arial, sans-serif;">
  <h2 style="color: #FFC107; margin-bottom: 20px;">Thank you for contacting {{.BusinessName}}</h2>

  <p>Hi {{.Name}},</p>

  <p>Thank you for your interest in our solar and battery solutions! We've received your quote request and will get back to you within 24 hours.</p>

  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #000;">What happens next?</h3>
    <ul style="color: #495057; line-height: 1.6;">
      <li>We'll review your requirements and property details</li>
      <li>A solar specialist will contact you to discuss your needs</li>
      <li>We'll arrange a free on-site assessment if suitable</li>
      <li>You'll receive a customized quote within 48 hours</li>
    </ul>
  </div>

  <div style="background: #fff3cd; padding: 15px; border-radius: 8px; border-left: 4px solid #FFC107; margin: 20px 0;">
    <p style="margin: 0;"><strong>Need to speak with someone urgently?</strong></p>
    <p style="margin: 5px 0 0 0;">Call us directly on <a href="tel:{{.BusinessPhone}}" style="color: #FFC107; text-decoration: none;">{{.BusinessPhone}}</a></p>
  </div>

  <p>Best regards,<br>
  <strong>{{.BusinessName}}</strong><br>
  Solar &amp; Battery Specialists</p>
</div>`
)

var (
	ownerMessageTemplate    = template.Must(template.New("owner_notification").Parse(ownerMessageTemplateText))
	customerMessageTemplate = template.Must(template.New("customer_confirmation").Parse(customerMessageTemplateText))
)

// RenderOwnerMessageBody builds the HTML body of the owner notification. All
// user-supplied text passes through html/template and is escaped against
// markup injection.
func RenderOwnerMessageBody(businessName string, submission model.ContactSubmission) (string, error) {
	var buffer bytes.Buffer
	executeErr := ownerMessageTemplate.Execute(&buffer, map[string]any{
		"BusinessName":     businessName,
		"Name":             submission.Name,
		"Email":            submission.Email,
		"Phone":            submission.Phone,
		"ServiceTypeLabel": model.ServiceTypeLabel(submission.ServiceType),
		"Message":          submission.Message,
		"ReceivedAt":       submission.CreatedAt.UTC().Format(time.RFC1123),
	})
	if executeErr != nil {
		return "", fmt.Errorf("render owner notification template: %w", executeErr)
	}
	return buffer.String(), nil
}

// RenderCustomerMessageBody builds the HTML body of the customer confirmation.
func RenderCustomerMessageBody(businessName string, businessPhone string, submission model.ContactSubmission) (string, error) {
	var buffer bytes.Buffer
	executeErr := customerMessageTemplate.Execute(&buffer, map[string]any{
		"BusinessName":  businessName,
		"BusinessPhone": businessPhone,
		"Name":          submission.Name,
	})
	if executeErr != nil {
		return "", fmt.Errorf("render customer confirmation template: %w", executeErr)
	}
	return buffer.String(), nil
}

// OwnerMessageSubject returns the subject line of the owner notification,
// reflecting the service-type label of the submission.
func OwnerMessageSubject(submission model.ContactSubmission) string {
	return fmt.Sprintf(ownerSubjectPattern, model.ServiceTypeLabel(submission.ServiceType))
}

// CustomerMessageSubject returns the subject line of the customer confirmation.
func CustomerMessageSubject(businessName string) string {
	return fmt.Sprintf(customerSubjectPattern, businessName)
}
