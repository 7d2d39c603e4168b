package entities

import "time"

// AutomationStatus is the lifecycle of one browser automation session.
//
// running -> success | error, exactly once. Retries create a new run.

type AutomationStatus string

const (
	AutomationStatusRunning AutomationStatus = "running"
	AutomationStatusSuccess AutomationStatus = "success"
	AutomationStatusError   AutomationStatus = "error"
)

func (s AutomationStatus) IsTerminal() bool {
	return s == AutomationStatusSuccess || s == AutomationStatusError
}

// AutomationInput is the non-secret description of what a run was asked to do.
// Raw credentials are never part of it.
type AutomationInput struct {
	PortalURL      string         `json:"portal_url"`
	HasCredentials bool           `json:"has_credentials"`
	FormFields     []string       `json:"form_fields"`
	FormData       map[string]any `json:"form_data,omitempty"`
}

// AutomationRun is one execution of a browser automation session for one Quote.
//
// Storage model:
//   - PK: id
//   - Unique: session_id (once assigned by the provider)
//   - Secondary: quote_id (attempt history, newest first)

type AutomationRun struct {
	ID             string           `json:"id"`
	SessionID      string           `json:"session_id,omitempty"`
	CarrierName    string           `json:"carrier_name"`
	QuoteID        string           `json:"quote_id"`
	Status         AutomationStatus `json:"status"`
	InputData      AutomationInput  `json:"input_data"`
	OutputData     map[string]any   `json:"output_data,omitempty"`
	ScreenshotURLs []string         `json:"screenshot_urls,omitempty"`
	Logs           string           `json:"logs,omitempty"`
	ErrorMessage   string           `json:"error_message,omitempty"`
	RetryCount     int              `json:"retry_count"`
	RetryOf        string           `json:"retry_of,omitempty"`
	StartedAt      time.Time        `json:"started_at"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
}

// AutomationResult is what a completion (webhook, poll or portal driver) reports.
type AutomationResult struct {
	Status         AutomationStatus `json:"status"`
	OutputData     map[string]any   `json:"output_data,omitempty"`
	ScreenshotURLs []string         `json:"screenshot_urls,omitempty"`
	Logs           string           `json:"logs,omitempty"`
	ErrorMessage   string           `json:"error_message,omitempty"`
}

// Session is the caller-facing view of a run.
type Session struct {
	SessionID      string           `json:"session_id"`
	RunID          string           `json:"run_id"`
	CarrierName    string           `json:"carrier_name"`
	QuoteID        string           `json:"quote_id"`
	Status         AutomationStatus `json:"status"`
	RetryCount     int              `json:"retry_count"`
	StartedAt      time.Time        `json:"started_at"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	OutputData     map[string]any   `json:"output_data,omitempty"`
	ScreenshotURLs []string         `json:"screenshot_urls,omitempty"`
	Logs           string           `json:"logs,omitempty"`
	ErrorMessage   string           `json:"error_message,omitempty"`
}

func (r AutomationRun) Session() Session {
	return Session{
		SessionID:      r.SessionID,
		RunID:          r.ID,
		CarrierName:    r.CarrierName,
		QuoteID:        r.QuoteID,
		Status:         r.Status,
		RetryCount:     r.RetryCount,
		StartedAt:      r.StartedAt,
		CompletedAt:    r.CompletedAt,
		OutputData:     r.OutputData,
		ScreenshotURLs: r.ScreenshotURLs,
		Logs:           r.Logs,
		ErrorMessage:   r.ErrorMessage,
	}
}

// Keys of AutomationRun.OutputData read by automation carrier adapters.
const (
	OutputKeyOutcome         = "outcome"
	OutputKeyQuoteNumber     = "quote_number"
	OutputKeyPremium         = "premium"
	OutputKeyDeclineReason   = "decline_reason"
	OutputKeyCoverageDetails = "coverage_details"
	OutputKeyDocumentURL     = "quote_document_url"
)
