package request

import (
	"strings"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"
)

// StartSessionRequest is the body of POST /v1/automation/sessions. Credentials are passed
// through to the provider and never stored.
type StartSessionRequest struct {
	CarrierName string                 `json:"carrier_name" binding:"required"`
	QuoteID     string                 `json:"quote_id" binding:"required"`
	PortalURL   string                 `json:"portal_url" binding:"required"`
	Credentials *PortalCredentialsBody `json:"credentials"`
	FormData    map[string]any         `json:"form_data"`
}

type PortalCredentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r StartSessionRequest) ToInput() interfaces.StartSessionInput {
	in := interfaces.StartSessionInput{
		CarrierName: strings.TrimSpace(r.CarrierName),
		QuoteID:     strings.TrimSpace(r.QuoteID),
		PortalURL:   strings.TrimSpace(r.PortalURL),
		FormData:    r.FormData,
	}
	if r.Credentials != nil && (r.Credentials.Username != "" || r.Credentials.Password != "") {
		in.Credentials = &interfaces.PortalCredentials{
			Username: r.Credentials.Username,
			Password: r.Credentials.Password,
		}
	}
	return in
}

// CompleteSessionRequest is the completion webhook body.
type CompleteSessionRequest struct {
	Status         string         `json:"status" binding:"required,oneof=success error"`
	OutputData     map[string]any `json:"output_data"`
	ScreenshotURLs []string       `json:"screenshot_urls"`
	Logs           string         `json:"logs"`
	ErrorMessage   string         `json:"error_message"`
}

func (r CompleteSessionRequest) ToResult() entities.AutomationResult {
	return entities.AutomationResult{
		Status:         entities.AutomationStatus(r.Status),
		OutputData:     r.OutputData,
		ScreenshotURLs: r.ScreenshotURLs,
		Logs:           r.Logs,
		ErrorMessage:   r.ErrorMessage,
	}
}
