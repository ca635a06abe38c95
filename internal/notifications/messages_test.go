package notifications_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/louis833/Donnachy-Electrical/internal/model"
	"github.com/louis833/Donnachy-Electrical/internal/notifications"
)

func sampleSubmission() model.ContactSubmission {
	return model.ContactSubmission{
		ID:          "7e6f9a34-3e21-4f70-92c4-6f5f2d1a9b10",
		Name:        "Alex Morgan",
		Email:       "alex@example.com",
		Phone:       "0409 000 000",
		ServiceType: model.ServiceTypeMaintenance,
		Message:     "Inverter fault light is on.",
		CreatedAt:   time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestOwnerMessageBodyRendersEveryField(t *testing.T) {
	messageBody, renderErr := notifications.RenderOwnerMessageBody("Donnachy Electrical", sampleSubmission())
	require.NoError(t, renderErr)

	require.Contains(t, messageBody, "Alex Morgan")
	require.Contains(t, messageBody, "alex@example.com")
	require.Contains(t, messageBody, "0409 000 000")
	require.Contains(t, messageBody, "Maintenance &amp; Support")
	require.Contains(t, messageBody, "Inverter fault light is on.")
	require.Contains(t, messageBody, "Donnachy Electrical")
}

func TestOwnerMessageBodyOmitsEmptyPhone(t *testing.T) {
	submission := sampleSubmission()
	submission.Phone = ""

	messageBody, renderErr := notifications.RenderOwnerMessageBody("Donnachy Electrical", submission)
	require.NoError(t, renderErr)
	require.NotContains(t, messageBody, "Phone:")
}

func TestOwnerMessageBodyEscapesMarkupInUserText(t *testing.T) {
	submission := sampleSubmission()
	submission.Name = `<b onmouseover="x()">Alex</b>`
	submission.Message = `<script>alert(1)</script>`

	messageBody, renderErr := notifications.RenderOwnerMessageBody("Donnachy Electrical", submission)
	require.NoError(t, renderErr)

	require.NotContains(t, messageBody, "<script>")
	require.NotContains(t, messageBody, `<b onmouseover`)
	require.Contains(t, messageBody, "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestCustomerMessageBodyGreetsSubmitterAndListsPhone(t *testing.T) {
	messageBody, renderErr := notifications.RenderCustomerMessageBody("Donnachy Electrical", "0409 820 219", sampleSubmission())
	require.NoError(t, renderErr)

	require.Contains(t, messageBody, "Hi Alex Morgan")
	require.Contains(t, messageBody, "0409 820 219")
	require.Contains(t, messageBody, "within 24 hours")
}

func TestCustomerMessageBodyEscapesSubmitterName(t *testing.T) {
	submission := sampleSubmission()
	submission.Name = `<img src=x onerror=alert(1)>`

	messageBody, renderErr := notifications.RenderCustomerMessageBody("Donnachy Electrical", "0409 820 219", submission)
	require.NoError(t, renderErr)
	require.NotContains(t, messageBody, "<img")
}

func TestOwnerMessageSubjectReflectsServiceTypeLabel(t *testing.T) {
	require.Equal(t, "New Solar Quote Request - Maintenance & Support", notifications.OwnerMessageSubject(sampleSubmission()))

	commercial := sampleSubmission()
	commercial.ServiceType = model.ServiceTypeCommercial
	require.Equal(t, "New Solar Quote Request - Commercial Installation", notifications.OwnerMessageSubject(commercial))
}

func TestCustomerMessageSubjectNamesBusiness(t *testing.T) {
	require.Equal(t, "Thank you for your solar quote request - Donnachy Electrical", notifications.CustomerMessageSubject("Donnachy Electrical"))
}
