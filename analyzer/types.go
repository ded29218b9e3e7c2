package analyzer

import (
	"time"

	"github.com/geo-audit/backend/audit"
	"github.com/geo-audit/backend/recommend"
)

// Version is reported in every result's Meta block.
const Version = "0.1.0"

// Meta describes how a result was produced.
type Meta struct {
	Version            string `json:"version"`
	AnalysisDurationMs int64  `json:"analysisDurationMs"`
	Cached             bool   `json:"cached"`
}

// Result is the complete outcome of auditing one URL.
type Result struct {
	URL             string                               `json:"url"`
	AnalyzedAt      time.Time                            `json:"analyzedAt"`
	OverallScore    int                                  `json:"overallScore"`
	Grade           string                               `json:"grade"`
	TotalPoints     int                                  `json:"totalPoints"`
	MaxPoints       int                                  `json:"maxPoints"`
	Categories      map[audit.CategoryKey]audit.Category `json:"categories"`
	Recommendations []recommend.Recommendation           `json:"recommendations"`
	RawData         map[string]any                       `json:"rawData"`
	Meta            Meta                                 `json:"meta"`
}

// CacheStats reports the state of the result cache.
type CacheStats struct {
	Entries    int           `json:"entries"`
	Hits       int           `json:"hits"`
	Misses     int           `json:"misses"`
	TTL        time.Duration `json:"ttl"`
	MaxEntries int           `json:"maxEntries"`
}
