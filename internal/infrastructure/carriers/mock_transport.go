package carriers

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"strings"
	"sync"

	"brokerage_crm/internal/domain/domainerr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockOutcomeKey in ApplicantData forces the mock carrier's decision (declined, no_offer, error).
const MockOutcomeKey = "mock_outcome"

// MockTransport is an in-process stand-in for a carrier API. Results are a pure function of
// the submission, so repeated runs give the same quote ids, numbers and premiums.
type MockTransport struct {
	carrier     string
	prefix      string
	basePremium int64
	spread      int64
	deductible  int

	mu     sync.RWMutex
	quotes map[string]QuoteRecord
}

var _ Transport = (*MockTransport)(nil)

// NewMockTransport builds a mock for carrier. Premiums fall in [basePremium, basePremium+spread).
func NewMockTransport(carrier, prefix string, basePremium, spread int64, deductible int) *MockTransport {
	if spread <= 0 {
		spread = 1
	}
	return &MockTransport{
		carrier:     carrier,
		prefix:      strings.ToUpper(prefix),
		basePremium: basePremium,
		spread:      spread,
		deductible:  deductible,
		quotes:      map[string]QuoteRecord{},
	}
}

func (m *MockTransport) Submit(_ context.Context, req SubmitPayload) (QuoteRecord, error) {
	key, err := json.Marshal(req)
	if err != nil {
		return QuoteRecord{}, err
	}
	id := uuid.NewSHA1(uuid.NameSpaceOID, append([]byte(m.carrier+"|"), key...))
	hexID := strings.ReplaceAll(id.String(), "-", "")

	rec := QuoteRecord{
		QuoteID:        strings.ToLower(m.prefix) + "_" + hexID[:16],
		Status:         "quoted",
		QuoteNumber:    m.prefix + "-" + strings.ToUpper(hexID[16:22]),
		ProductLine:    req.ProductLine,
		EffectiveDate:  req.EffectiveDate,
		ExpirationDate: req.ExpirationDate,
	}
	rec.CoverageDetails = map[string]any{"limits": "1M/2M", "deductible": m.deductible}

	switch forced, _ := req.ApplicantData[MockOutcomeKey].(string); forced {
	case "declined":
		rec.Status = forced
		rec.QuoteNumber = ""
		rec.CoverageDetails = nil
		rec.DeclineReason = "risk outside carrier appetite"
	case "no_offer":
		rec.Status = forced
		rec.QuoteNumber = ""
		rec.CoverageDetails = nil
	case "error":
		rec.Status = forced
		rec.QuoteNumber = ""
		rec.CoverageDetails = nil
		rec.ErrorMessage = "carrier rating engine unavailable"
	case statusPending:
		rec.Status = statusPending
		rec.QuoteNumber = ""
		rec.CoverageDetails = nil
	default:
		n := int64(binary.BigEndian.Uint64(id[8:16]) >> 1)
		rec.Premium = decimal.NewNullDecimal(decimal.NewFromInt(m.basePremium + n%m.spread))
	}

	m.mu.Lock()
	m.quotes[rec.QuoteID] = rec
	m.mu.Unlock()
	return rec, nil
}

func (m *MockTransport) Status(_ context.Context, quoteID string) (QuoteRecord, error) {
	m.mu.RLock()
	rec, ok := m.quotes[quoteID]
	m.mu.RUnlock()
	if !ok {
		return QuoteRecord{}, domainerr.NewNotFoundError(m.carrier+" quote", quoteID)
	}
	return rec, nil
}

// Document returns a stable URL for quoted quotes and "" otherwise, unknown ids included,
// matching a document 404 on the HTTP transport.
func (m *MockTransport) Document(_ context.Context, quoteID string) (string, error) {
	m.mu.RLock()
	rec, ok := m.quotes[quoteID]
	m.mu.RUnlock()
	if !ok || rec.Status != "quoted" {
		return "", nil
	}
	return "https://documents.invalid/" + strings.ToLower(m.prefix) + "/" + quoteID + ".pdf", nil
}
