package response

import (
	"time"

	"brokerage_crm/internal/domain/entities"
)

type SessionResponse struct {
	SessionID      string         `json:"session_id"`
	RunID          string         `json:"run_id"`
	CarrierName    string         `json:"carrier_name"`
	QuoteID        string         `json:"quote_id"`
	Status         string         `json:"status"`
	RetryCount     int            `json:"retry_count"`
	StartedAt      time.Time      `json:"started_at"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	OutputData     map[string]any `json:"output_data,omitempty"`
	ScreenshotURLs []string       `json:"screenshot_urls,omitempty"`
	Logs           string         `json:"logs,omitempty"`
	ErrorMessage   string         `json:"error_message,omitempty"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		SessionID:      s.SessionID,
		RunID:          s.RunID,
		CarrierName:    s.CarrierName,
		QuoteID:        s.QuoteID,
		Status:         string(s.Status),
		RetryCount:     s.RetryCount,
		StartedAt:      s.StartedAt,
		CompletedAt:    s.CompletedAt,
		OutputData:     s.OutputData,
		ScreenshotURLs: s.ScreenshotURLs,
		Logs:           s.Logs,
		ErrorMessage:   s.ErrorMessage,
	}
}

type AutomationRunResponse struct {
	ID           string     `json:"id"`
	SessionID    string     `json:"session_id,omitempty"`
	CarrierName  string     `json:"carrier_name"`
	QuoteID      string     `json:"quote_id"`
	Status       string     `json:"status"`
	PortalURL    string     `json:"portal_url"`
	FormFields   []string   `json:"form_fields,omitempty"`
	RetryCount   int        `json:"retry_count"`
	RetryOf      string     `json:"retry_of,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

func FromAutomationRuns(runs []entities.AutomationRun) []AutomationRunResponse {
	out := make([]AutomationRunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, AutomationRunResponse{
			ID:           r.ID,
			SessionID:    r.SessionID,
			CarrierName:  r.CarrierName,
			QuoteID:      r.QuoteID,
			Status:       string(r.Status),
			PortalURL:    r.InputData.PortalURL,
			FormFields:   r.InputData.FormFields,
			RetryCount:   r.RetryCount,
			RetryOf:      r.RetryOf,
			ErrorMessage: r.ErrorMessage,
			StartedAt:    r.StartedAt,
			CompletedAt:  r.CompletedAt,
		})
	}
	return out
}
