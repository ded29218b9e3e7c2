package audit

import (
	"encoding/json"

	"github.com/geo-audit/backend/extractor"
)

// schemaRequiredProperties is the static table of required property names
// per recognized JSON-LD type. Kept as data, not branching code, so the
// coverage is reviewable at a glance.
var schemaRequiredProperties = map[string][]string{
	"Article":       {"headline", "author", "datePublished"},
	"NewsArticle":   {"headline", "author", "datePublished"},
	"BlogPosting":   {"headline", "author", "datePublished"},
	"FAQPage":       {"mainEntity"},
	"HowTo":         {"name", "step"},
	"Organization":  {"name", "url"},
	"LocalBusiness": {"name", "address"},
	"Product":       {"name"},
	"WebPage":       {"name"},
}

// SchemaDetail records the required-property partition for one recognized
// JSON-LD object.
type SchemaDetail struct {
	Type    string   `json:"type"`
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// SchemaCompleteness summarizes how completely the page's recognized
// JSON-LD objects fill in their required properties. Unrecognized types are
// ignored entirely and do not count toward TotalTypes.
type SchemaCompleteness struct {
	TotalTypes      int            `json:"totalTypes"`
	AvgCompleteness float64        `json:"avgCompleteness"`
	Details         []SchemaDetail `json:"details"`
}

// ParseJSONLDObjects decodes every application/ld+json script on the page.
// Malformed blocks are skipped silently; top-level arrays are flattened.
func ParseJSONLDObjects(doc extractor.Document) []map[string]any {
	var objects []map[string]any
	for _, script := range doc.SelectAll(`script[type="application/ld+json"]`) {
		raw := doc.Text(script)
		if raw == "" {
			continue
		}
		var decoded any
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			continue
		}
		switch v := decoded.(type) {
		case []any:
			for _, item := range v {
				if obj, ok := item.(map[string]any); ok {
					objects = append(objects, obj)
				}
			}
		case map[string]any:
			objects = append(objects, v)
		}
	}
	return objects
}

// EvaluateSchemaCompleteness partitions each recognized object's required
// properties into present and missing. A property is present when its value
// is non-nil.
func EvaluateSchemaCompleteness(objects []map[string]any) SchemaCompleteness {
	details := []SchemaDetail{}

	for _, obj := range objects {
		objType, _ := obj["@type"].(string)
		required, recognized := schemaRequiredProperties[objType]
		if !recognized {
			continue
		}

		detail := SchemaDetail{Type: objType, Present: []string{}, Missing: []string{}}
		for _, prop := range required {
			if v, ok := obj[prop]; ok && v != nil {
				detail.Present = append(detail.Present, prop)
			} else {
				detail.Missing = append(detail.Missing, prop)
			}
		}
		details = append(details, detail)
	}

	avg := 0.0
	if len(details) > 0 {
		sum := 0.0
		for _, d := range details {
			sum += float64(len(d.Present)) / float64(len(d.Present)+len(d.Missing))
		}
		avg = sum / float64(len(details))
	}

	return SchemaCompleteness{
		TotalTypes:      len(details),
		AvgCompleteness: avg,
		Details:         details,
	}
}
