package browserbase

import (
	"errors"
	"strings"

	"brokerage_crm/internal/domain/entities"

	"github.com/PuerkitoBio/goquery"
)

// ResultSelector marks the portal element that holds the carrier decision once the quote
// form has been processed.
const ResultSelector = "[data-quote-result]"

var ErrNoResult = errors.New("portal page has no quote result")

// ParseResultPage reads the carrier decision from a rendered portal result page into run
// output data. It understands pages of the form
//
//	<div data-quote-result="quoted" data-quote-number="MKL-1" data-premium="$3,150.00">
//	  <a data-quote-document href="https://...">Quote PDF</a>
//	  <dl data-coverage><dt>limits</dt><dd>1M/2M</dd></dl>
//	</div>
//
// with data-decline-reason used for declined results. Attribute values win over the text of
// child elements carrying the same data attribute.
func ParseResultPage(html string) (map[string]any, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	result := doc.Find(ResultSelector).First()
	if result.Length() == 0 {
		return nil, ErrNoResult
	}

	out := map[string]any{}
	outcome := strings.ToLower(strings.TrimSpace(result.AttrOr("data-quote-result", "")))
	if outcome == "" {
		outcome = string(entities.OutcomeQuoted)
	}
	out[entities.OutputKeyOutcome] = outcome

	if v := field(result, "data-quote-number"); v != "" {
		out[entities.OutputKeyQuoteNumber] = v
	}
	if v := field(result, "data-premium"); v != "" {
		out[entities.OutputKeyPremium] = v
	}
	if v := field(result, "data-decline-reason"); v != "" {
		out[entities.OutputKeyDeclineReason] = v
	}
	if href, ok := result.Find("[data-quote-document]").First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		out[entities.OutputKeyDocumentURL] = strings.TrimSpace(href)
	}

	coverage := map[string]any{}
	result.Find("[data-coverage] dt").Each(func(_ int, dt *goquery.Selection) {
		key := strings.TrimSpace(dt.Text())
		if key == "" {
			return
		}
		coverage[key] = strings.TrimSpace(dt.NextFiltered("dd").Text())
	})
	if len(coverage) > 0 {
		out[entities.OutputKeyCoverageDetails] = coverage
	}
	return out, nil
}

func field(s *goquery.Selection, attr string) string {
	if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(s.Find("[" + attr + "]").First().Text())
}
