package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	healthStatusValue        = "healthy"
	healthServiceNameSuffix  = " Contact API"
	defaultHealthServiceName = "Contact API"
)

// HealthHandlers serves the liveness endpoint.
type HealthHandlers struct {
	serviceName string
}

// NewHealthHandlers creates HealthHandlers reporting the given business name.
func NewHealthHandlers(businessName string) *HealthHandlers {
	trimmedBusinessName := strings.TrimSpace(businessName)
	serviceName := defaultHealthServiceName
	if trimmedBusinessName != "" {
		serviceName = trimmedBusinessName + healthServiceNameSuffix
	}
	return &HealthHandlers{serviceName: serviceName}
}

// Health reports service liveness. Always 200.
func (h *HealthHandlers) Health(context *gin.Context) {
	context.JSON(http.StatusOK, gin.H{
		"status":    healthStatusValue,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   h.serviceName,
	})
}
