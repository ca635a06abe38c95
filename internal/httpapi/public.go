package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/louis833/Donnachy-Electrical/internal/model"
	"github.com/louis833/Donnachy-Electrical/internal/storage"
)

const (
	responseMessageSuccess     = "Thank you for your inquiry! We'll be in touch within 24 hours."
	responseMessageInvalidData = "Please check your form data and try again."
	responseMessageRateLimited = "Too many contact form submissions. Please try again in 15 minutes."
	responseMessageServerError = "Something went wrong. Please try again later or contact us directly."

	logEventSaveContactFailed          = "save_contact_failed"
	logEventOwnerNotificationFailed    = "owner_notification_failed"
	logEventOwnerNotificationSent      = "owner_notification_sent"
	logEventCustomerNotificationFailed = "customer_notification_failed"
	logEventCustomerNotificationSent   = "customer_notification_sent"
	logFieldContactID                  = "contact_id"

	defaultNotificationTimeout = 30 * time.Second
)

// PublicHandlers serves the unauthenticated contact-form API.
type PublicHandlers struct {
	contacts            *storage.ContactRepository
	logger              *zap.Logger
	rateLimiter         SubmissionRateLimiter
	contactNotifier     ContactNotifier
	notificationTimeout time.Duration
	notificationsDone   func()
}

// NewPublicHandlers creates PublicHandlers. A nil notifier disables
// notification sends without disabling submission acceptance.
func NewPublicHandlers(contacts *storage.ContactRepository, logger *zap.Logger, rateLimiter SubmissionRateLimiter, notifier ContactNotifier) *PublicHandlers {
	if rateLimiter == nil {
		rateLimiter = NewSlidingWindowRateLimiter(DefaultRateLimitWindow, DefaultRateLimitMaxRequests)
	}
	return &PublicHandlers{
		contacts:            contacts,
		logger:              logger,
		rateLimiter:         rateLimiter,
		contactNotifier:     resolveContactNotifier(notifier),
		notificationTimeout: defaultNotificationTimeout,
	}
}

// WithNotificationsDone registers a hook invoked after both notification
// sends for a submission have finished. Used by tests to synchronize with the
// detached sends.
func (h *PublicHandlers) WithNotificationsDone(done func()) *PublicHandlers {
	h.notificationsDone = done
	return h
}

type createContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

// CreateContact handles one contact-form submission end to end: rate limit,
// validate, persist, then dispatch both notifications best-effort. The HTTP
// outcome is determined entirely by validation and persistence; notification
// failures are logged and never surfaced to the caller.
func (h *PublicHandlers) CreateContact(context *gin.Context) {
	clientIP := context.ClientIP()
	if !h.rateLimiter.Allow(clientIP) {
		context.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"message": responseMessageRateLimited,
		})
		return
	}

	var payload createContactRequest
	if bindErr := context.BindJSON(&payload); bindErr != nil {
		context.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": responseMessageInvalidData,
		})
		return
	}

	input := model.ContactInput{
		Name:        payload.Name,
		Email:       payload.Email,
		Phone:       payload.Phone,
		ServiceType: payload.ServiceType,
		Message:     payload.Message,
	}.Normalized()

	if fieldErrors := input.Validate(); len(fieldErrors) > 0 {
		context.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": responseMessageInvalidData,
			"errors":  fieldErrors,
		})
		return
	}

	submission, createErr := h.contacts.CreateContact(context.Request.Context(), input)
	if createErr != nil {
		h.logger.Warn(logEventSaveContactFailed, zap.Error(createErr))
		context.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": responseMessageServerError,
		})
		return
	}

	h.dispatchNotifications(submission)

	context.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": responseMessageSuccess,
		"id":      submission.ID,
	})
}

// dispatchNotifications runs the owner and customer sends concurrently in a
// detached goroutine so the HTTP response never waits on mail transport
// timeouts. Each send's failure is caught and logged individually; neither
// can suppress an attempt at the other.
func (h *PublicHandlers) dispatchNotifications(submission model.ContactSubmission) {
	notifier := h.contactNotifier
	logger := h.logger
	timeout := h.notificationTimeout
	done := h.notificationsDone

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var waitGroup sync.WaitGroup
		waitGroup.Add(2)

		go func() {
			defer waitGroup.Done()
			if notifyErr := notifier.NotifyOwner(sendCtx, submission); notifyErr != nil {
				logger.Warn(logEventOwnerNotificationFailed, zap.Error(notifyErr), zap.String(logFieldContactID, submission.ID))
				return
			}
			logger.Info(logEventOwnerNotificationSent, zap.String(logFieldContactID, submission.ID))
		}()

		go func() {
			defer waitGroup.Done()
			if notifyErr := notifier.NotifyCustomer(sendCtx, submission); notifyErr != nil {
				logger.Warn(logEventCustomerNotificationFailed, zap.Error(notifyErr), zap.String(logFieldContactID, submission.ID))
				return
			}
			logger.Info(logEventCustomerNotificationSent, zap.String(logFieldContactID, submission.ID))
		}()

		waitGroup.Wait()
		if done != nil {
			done()
		}
	}()
}
