package audit

import (
	"time"

	"github.com/geo-audit/backend/extractor"
)

// Run executes all seven category auditors against the page and merges
// their outputs. Every stage is a pure function of its inputs; the clock is
// passed through to the freshness evaluation only. Auditors never fail on
// data shape, so Run always produces a complete Result.
func Run(page *extractor.Page, fetch FetchInfo, signals *DomainSignals, now time.Time) Result {
	result := Result{
		Categories: make(map[CategoryKey]Category, len(CategoryKeys)),
		RawData:    make(map[string]any),
	}

	merge := func(category Category, rawData map[string]any) {
		result.Categories[category.Key] = category
		// The auditors emit disjoint rawData keys, so last-writer-wins is safe.
		for k, v := range rawData {
			result.RawData[k] = v
		}
	}

	merge(auditContentExtractability(page, fetch, signals))
	merge(auditContentStructure(page))
	merge(auditAnswerability(page))
	merge(auditEntityClarity(page))
	merge(auditGroundingSignals(page))
	merge(auditAuthorityContext(page, now))
	merge(auditReadabilityForCompression(page))

	return result
}
