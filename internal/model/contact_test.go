package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/louis833/Donnachy-Electrical/internal/model"
)

func validContactInput() model.ContactInput {
	return model.ContactInput{
		Name:        "Alex Morgan",
		Email:       "alex@example.com",
		Phone:       "0409 000 000",
		ServiceType: model.ServiceTypeResidential,
		Message:     "Looking for a quote on a 6.6kW system.",
	}
}

func TestValidateAcceptsValidInput(t *testing.T) {
	require.Empty(t, validContactInput().Validate())
}

func TestValidatePhoneIsOptional(t *testing.T) {
	input := validContactInput()
	input.Phone = ""
	require.Empty(t, input.Validate())
}

func TestValidateReportsMissingRequiredFields(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(*model.ContactInput)
		expectedField string
	}{
		{"missing name", func(input *model.ContactInput) { input.Name = "" }, "name"},
		{"missing email", func(input *model.ContactInput) { input.Email = "" }, "email"},
		{"missing service type", func(input *model.ContactInput) { input.ServiceType = "" }, "serviceType"},
		{"missing message", func(input *model.ContactInput) { input.Message = "" }, "message"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			input := validContactInput()
			testCase.mutate(&input)

			fieldErrors := input.Validate()
			require.Len(t, fieldErrors, 1)
			require.Equal(t, testCase.expectedField, fieldErrors[0].Field)
			require.NotEmpty(t, fieldErrors[0].Message)
		})
	}
}

func TestValidateReportsErrorsInEvaluationOrder(t *testing.T) {
	fieldErrors := model.ContactInput{}.Validate()

	require.Len(t, fieldErrors, 4)
	require.Equal(t, "name", fieldErrors[0].Field)
	require.Equal(t, "email", fieldErrors[1].Field)
	require.Equal(t, "serviceType", fieldErrors[2].Field)
	require.Equal(t, "message", fieldErrors[3].Field)
}

func TestValidateRejectsUnknownServiceType(t *testing.T) {
	input := validContactInput()
	input.ServiceType = "landscaping"

	fieldErrors := input.Validate()
	require.Len(t, fieldErrors, 1)
	require.Equal(t, "serviceType", fieldErrors[0].Field)
	require.Contains(t, fieldErrors[0].Message, model.ServiceTypeResidential)
}

func TestValidateRejectsImplausibleEmail(t *testing.T) {
	for _, badEmail := range []string{"not-an-email", "missing@domain@twice", "trailing@"} {
		input := validContactInput()
		input.Email = badEmail

		fieldErrors := input.Validate()
		require.Len(t, fieldErrors, 1, "email %q", badEmail)
		require.Equal(t, "email", fieldErrors[0].Field)
	}
}

func TestValidateRejectsOverlongFields(t *testing.T) {
	input := validContactInput()
	input.Name = strings.Repeat("a", 201)
	input.Message = strings.Repeat("b", 4001)

	fieldErrors := input.Validate()
	require.Len(t, fieldErrors, 2)
	require.Equal(t, "name", fieldErrors[0].Field)
	require.Equal(t, "message", fieldErrors[1].Field)
}

func TestNormalizedTrimsAndLowercasesEmail(t *testing.T) {
	input := model.ContactInput{
		Name:        "  Alex Morgan  ",
		Email:       " Alex@Example.COM ",
		Phone:       " 0409 000 000 ",
		ServiceType: " residential ",
		Message:     " hello ",
	}.Normalized()

	require.Equal(t, "Alex Morgan", input.Name)
	require.Equal(t, "alex@example.com", input.Email)
	require.Equal(t, "0409 000 000", input.Phone)
	require.Equal(t, model.ServiceTypeResidential, input.ServiceType)
	require.Equal(t, "hello", input.Message)
}

func TestServiceTypeLabels(t *testing.T) {
	require.Equal(t, "Residential Installation", model.ServiceTypeLabel(model.ServiceTypeResidential))
	require.Equal(t, "Commercial Installation", model.ServiceTypeLabel(model.ServiceTypeCommercial))
	require.Equal(t, "Maintenance & Support", model.ServiceTypeLabel(model.ServiceTypeMaintenance))
	require.Equal(t, "Financing Options", model.ServiceTypeLabel(model.ServiceTypeFinancing))
	require.Equal(t, "Other", model.ServiceTypeLabel(model.ServiceTypeOther))
	require.Equal(t, "mystery", model.ServiceTypeLabel("mystery"))
}

func TestAllowedServiceTypesIsStable(t *testing.T) {
	allowed := model.AllowedServiceTypes()
	require.Equal(t, []string{
		model.ServiceTypeResidential,
		model.ServiceTypeCommercial,
		model.ServiceTypeMaintenance,
		model.ServiceTypeFinancing,
		model.ServiceTypeOther,
	}, allowed)

	allowed[0] = "mutated"
	require.Equal(t, model.ServiceTypeResidential, model.AllowedServiceTypes()[0])
}
