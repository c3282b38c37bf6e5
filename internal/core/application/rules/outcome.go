// Package rules defines the outcome contract every fulfillment operation
// returns. Business failures are encoded into an Outcome rather than returned
// as Go errors, so a handler's error return is reserved for infrastructure
// faults.
package rules

import "net/http"

// NotificationType classifies a notification for the operator UI.
type NotificationType string

const (
	// NotificationWarn flags a recoverable business-rule violation the
	// operator fixes by correcting input or re-scanning.
	NotificationWarn NotificationType = "WARN"

	// NotificationCaution flags advisory information that does not block
	// the operation.
	NotificationCaution NotificationType = "CAUTION"

	// NotificationSystem flags a dependency failure the caller may retry
	// transparently rather than prompt the operator.
	NotificationSystem NotificationType = "SYSTEM"

	// NotificationSuccess accompanies a successful outcome.
	NotificationSuccess NotificationType = "SUCCESS"

	// NotificationConfirmation asks the operator to confirm before the
	// operation proceeds.
	NotificationConfirmation NotificationType = "CONFIRMATION"
)

// Notification is one operator-facing message inside an outcome.
type Notification struct {
	StatusCode       int              `json:"statusCode"`
	NotificationType NotificationType `json:"notificationType"`
	Name             string           `json:"name,omitempty"`
	Message          string           `json:"message"`
	Reason           string           `json:"reason,omitempty"`
	Action           string           `json:"action,omitempty"`
}

// Warn builds a BAD_REQUEST warning notification.
func Warn(name, message string) Notification {
	return Notification{
		StatusCode:       http.StatusBadRequest,
		NotificationType: NotificationWarn,
		Name:             name,
		Message:          message,
	}
}

// System builds a BAD_REQUEST system-failure notification.
func System(name, message string) Notification {
	return Notification{
		StatusCode:       http.StatusBadRequest,
		NotificationType: NotificationSystem,
		Name:             name,
		Message:          message,
	}
}

// Success builds an OK success notification.
func Success(message string) Notification {
	return Notification{
		StatusCode:       http.StatusOK,
		NotificationType: NotificationSuccess,
		Message:          message,
	}
}

// Confirmation builds an OK confirmation prompt.
func Confirmation(message string) Notification {
	return Notification{
		StatusCode:       http.StatusOK,
		NotificationType: NotificationConfirmation,
		Message:          message,
	}
}

// Outcome is the standard response shape of every fulfillment operation.
// RuleCode is the authoritative success/failure signal: notifications may
// accompany valid data (stale-view cases), so their presence alone does not
// mean failure.
type Outcome struct {
	RuleCode      int               `json:"ruleCode"`
	Notifications []Notification    `json:"notifications,omitempty"`
	Results       map[string][]any  `json:"results,omitempty"`
	Links         map[string]string `json:"_links,omitempty"`
}

// OK creates a success outcome.
func OK(notifications ...Notification) Outcome {
	return Outcome{RuleCode: http.StatusOK, Notifications: notifications}
}

// BadRequest creates a failure outcome.
func BadRequest(notifications ...Notification) Outcome {
	return Outcome{RuleCode: http.StatusBadRequest, Notifications: notifications}
}

// IsSuccess reports whether the outcome signals success.
func (o Outcome) IsSuccess() bool {
	return o.RuleCode < http.StatusBadRequest
}

// WithResult attaches a named result list and returns the outcome.
func (o Outcome) WithResult(key string, values ...any) Outcome {
	if o.Results == nil {
		o.Results = make(map[string][]any)
	}
	o.Results[key] = values
	return o
}

// WithLink attaches a named navigation link and returns the outcome.
func (o Outcome) WithLink(name, url string) Outcome {
	if o.Links == nil {
		o.Links = make(map[string]string)
	}
	o.Links[name] = url
	return o
}

// WithNotifications replaces the outcome's notifications and returns it.
func (o Outcome) WithNotifications(notifications ...Notification) Outcome {
	o.Notifications = notifications
	return o
}
