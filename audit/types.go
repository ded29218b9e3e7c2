// Package audit hosts the category auditors that turn a normalized page
// into per-factor scores, along with the evaluators they share: robots.txt
// crawler access, date freshness, JSON-LD completeness and entity
// consistency.
package audit

// CategoryKey identifies one of the seven fixed audit dimensions.
type CategoryKey string

const (
	ContentExtractability     CategoryKey = "contentExtractability"
	ContentStructure          CategoryKey = "contentStructure"
	Answerability             CategoryKey = "answerability"
	EntityClarity             CategoryKey = "entityClarity"
	GroundingSignals          CategoryKey = "groundingSignals"
	AuthorityContext          CategoryKey = "authorityContext"
	ReadabilityForCompression CategoryKey = "readabilityForCompression"
)

// CategoryKeys lists the seven keys in canonical display order.
var CategoryKeys = []CategoryKey{
	ContentExtractability,
	ContentStructure,
	Answerability,
	EntityClarity,
	GroundingSignals,
	AuthorityContext,
	ReadabilityForCompression,
}

var categoryNames = map[CategoryKey]string{
	ContentExtractability:     "Content Extractability",
	ContentStructure:          "Content Structure for Reuse",
	Answerability:             "Answerability",
	EntityClarity:             "Entity Clarity",
	GroundingSignals:          "Grounding Signals",
	AuthorityContext:          "Authority Context",
	ReadabilityForCompression: "Readability for Compression",
}

// DisplayName returns the human-readable name for a category key.
func DisplayName(key CategoryKey) string {
	return categoryNames[key]
}

// FactorStatus classifies how a factor is doing relative to its maximum.
type FactorStatus string

const (
	StatusGood             FactorStatus = "good"
	StatusNeedsImprovement FactorStatus = "needs_improvement"
	StatusCritical         FactorStatus = "critical"
	// StatusNeutral marks factors whose signal is structurally inapplicable
	// to the page, e.g. image accessibility with zero images.
	StatusNeutral FactorStatus = "neutral"
)

// Factor is one measurable heuristic signal with its evidence string.
type Factor struct {
	Name     string       `json:"name"`
	Score    int          `json:"score"`
	MaxScore int          `json:"maxScore"`
	Value    string       `json:"value"`
	Status   FactorStatus `json:"status"`
}

// Category aggregates the factors of one audit dimension. Score and
// MaxScore are always the sums over Factors.
type Category struct {
	Key      CategoryKey `json:"key"`
	Name     string      `json:"name"`
	Score    int         `json:"score"`
	MaxScore int         `json:"maxScore"`
	Factors  []Factor    `json:"factors"`
}

// Result is the merged output of all seven category auditors. RawData keys
// are disjoint across categories; the merge is last-writer-wins, so a
// collision would silently clobber evidence.
type Result struct {
	Categories map[CategoryKey]Category `json:"categories"`
	RawData    map[string]any           `json:"rawData"`
}

// FetchInfo is the slice of the fetch outcome the auditors score against.
type FetchInfo struct {
	StatusCode  int   `json:"statusCode"`
	FetchTimeMs int64 `json:"fetchTimeMs"`
}

// DomainSignals carries the optional domain-level probe results. An empty
// RobotsTxt means the file was absent or unreachable.
type DomainSignals struct {
	RobotsTxt         string `json:"robotsTxt"`
	LLMsTxtExists     bool   `json:"llmsTxtExists"`
	LLMsFullTxtExists bool   `json:"llmsFullTxtExists"`
}
