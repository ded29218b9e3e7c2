package audit

import (
	"strings"

	"github.com/geo-audit/backend/extractor"
)

// EntityConsistency reports how consistently the canonical entity name
// shows up across the page's fixed identity surfaces.
type EntityConsistency struct {
	EntityName     string `json:"entityName"`
	Score          int    `json:"score"`
	SurfacesFound  int    `json:"surfacesFound"`
	SurfacesChecked int   `json:"surfacesChecked"`
}

// ResolveEntityName picks the canonical brand/entity name for the page:
// og:site_name first, then an Organization JSON-LD name, then any JSON-LD
// publisher name. Returns "" when no candidate exists.
func ResolveEntityName(doc extractor.Document) string {
	for _, meta := range doc.SelectAll(`meta[property="og:site_name"]`) {
		if name := strings.TrimSpace(doc.Attr(meta, "content")); name != "" {
			return name
		}
	}

	orgName := ""
	for _, obj := range ParseJSONLDObjects(doc) {
		if objType, _ := obj["@type"].(string); objType == "Organization" {
			if name := stringField(obj, "name"); name != "" {
				orgName = name
			}
		}
		if publisher, ok := obj["publisher"].(map[string]any); ok {
			if name := stringField(publisher, "name"); name != "" && orgName == "" {
				orgName = name
			}
		}
	}
	return orgName
}

// MeasureEntityConsistency checks the entity name against four fixed
// surfaces: the title, og:title, the footer, and copyright/legal or header
// text. Matching is case-insensitive substring containment.
func MeasureEntityConsistency(doc extractor.Document, pageTitle, entityName string) EntityConsistency {
	if entityName == "" {
		return EntityConsistency{}
	}

	nameLower := strings.ToLower(entityName)
	found := 0

	if strings.Contains(strings.ToLower(pageTitle), nameLower) {
		found++
	}
	if strings.Contains(strings.ToLower(attrOfFirst(doc, `meta[property="og:title"]`, "content")), nameLower) {
		found++
	}
	if strings.Contains(combinedText(doc, "footer"), nameLower) {
		found++
	}
	copyrightText := combinedText(doc, `[class*="copyright"], [class*="legal"]`)
	headerText := combinedText(doc, "header")
	if strings.Contains(copyrightText, nameLower) || strings.Contains(headerText, nameLower) {
		found++
	}

	score := 0
	switch {
	case found >= 4:
		score = 10
	case found >= 3:
		score = 7
	case found >= 2:
		score = 4
	case found >= 1:
		score = 2
	}

	return EntityConsistency{
		EntityName:      entityName,
		Score:           score,
		SurfacesFound:   found,
		SurfacesChecked: 4,
	}
}

func stringField(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func attrOfFirst(doc extractor.Document, selector, name string) string {
	if nodes := doc.SelectAll(selector); len(nodes) > 0 {
		return doc.Attr(nodes[0], name)
	}
	return ""
}

func combinedText(doc extractor.Document, selector string) string {
	var sb strings.Builder
	for _, n := range doc.SelectAll(selector) {
		sb.WriteString(doc.Text(n))
	}
	return strings.ToLower(sb.String())
}
