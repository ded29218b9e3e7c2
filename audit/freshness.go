package audit

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/geo-audit/backend/extractor"
	"github.com/geo-audit/backend/textmetrics"
)

// Freshness describes the page's publish/modified dates and their age.
// AgeInMonths is nil when no date was found or none could be parsed;
// HasModifiedDate only reflects that a modified-date string was present,
// regardless of parseability.
type Freshness struct {
	PublishDate     *string `json:"publishDate"`
	ModifiedDate    *string `json:"modifiedDate"`
	AgeInMonths     *int    `json:"ageInMonths"`
	HasModifiedDate bool    `json:"hasModifiedDate"`
}

// EvaluateFreshness locates the first modified-date and publish-date
// candidates on the page and computes a calendar-month age against now.
// The clock is injected so results stay reproducible.
func EvaluateFreshness(doc extractor.Document, now time.Time) Freshness {
	modifiedDate := firstDateValue(doc, textmetrics.ModifiedDateSelectors)
	publishDate := firstDateValue(doc, textmetrics.PublishDateSelectors)

	mostRecent := modifiedDate
	if mostRecent == nil {
		mostRecent = publishDate
	}

	var ageInMonths *int
	if mostRecent != nil {
		if parsed, err := dateparse.ParseAny(*mostRecent); err == nil {
			age := (now.Year()-parsed.Year())*12 + int(now.Month()) - int(parsed.Month())
			ageInMonths = &age
		}
	}

	return Freshness{
		PublishDate:     publishDate,
		ModifiedDate:    modifiedDate,
		AgeInMonths:     ageInMonths,
		HasModifiedDate: modifiedDate != nil,
	}
}

// firstDateValue returns the first non-empty date string over the ordered
// selector list, preferring the datetime attribute, then content, then the
// trimmed element text.
func firstDateValue(doc extractor.Document, selectors []string) *string {
	node, ok := firstSelectorMatch(doc, selectors)
	if !ok {
		return nil
	}
	value := doc.Attr(node, "datetime")
	if value == "" {
		value = doc.Attr(node, "content")
	}
	if value == "" {
		value = trimText(doc, node)
	}
	if value == "" {
		return nil
	}
	return &value
}
