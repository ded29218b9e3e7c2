package audit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/geo-audit/backend/extractor"
	"github.com/geo-audit/backend/textmetrics"
)

func auditAuthorityContext(page *extractor.Page, now time.Time) (Category, map[string]any) {
	doc := page.Doc
	var factors []Factor
	rawData := make(map[string]any)

	authorName := ""
	if node, ok := firstSelectorMatch(doc, textmetrics.AuthorSelectors); ok {
		authorName = trimText(doc, node)
		if authorName == "" {
			authorName = doc.Attr(node, "content")
		}
		if authorName == "" {
			authorName = "Found"
		}
	}
	if authorName != "" {
		factors = append(factors, makeFactor("Author Attribution", 10, 10, authorName))
	} else {
		factors = append(factors, makeFactor("Author Attribution", 0, 10, "Not found"))
	}

	hasOrgSchema := strings.Contains(page.HTML, `"@type":"Organization"`) ||
		strings.Contains(page.HTML, `"@type": "Organization"`)
	ogSiteName := attrOfFirst(doc, `meta[property="og:site_name"]`, "content")
	orgValue := "Not found"
	orgScore := 0
	if hasOrgSchema || ogSiteName != "" {
		orgScore = 10
		orgValue = ogSiteName
		if orgValue == "" {
			orgValue = "Schema found"
		}
	}
	factors = append(factors, makeFactor("Organization Identity", orgScore, 10, orgValue))

	aboutLink := len(doc.SelectAll(`a[href*="about"], a[href*="team"], a[href*="company"]`)) > 0
	contactLink := len(doc.SelectAll(`a[href*="contact"]`)) > 0
	contactScore := 0
	var linkParts []string
	if aboutLink {
		contactScore += 5
		linkParts = append(linkParts, "About")
	}
	if contactLink {
		contactScore += 5
		linkParts = append(linkParts, "Contact")
	}
	linkValue := "Not found"
	if len(linkParts) > 0 {
		linkValue = strings.Join(linkParts, " + ")
	}
	factors = append(factors, makeFactor("Contact/About Links", contactScore, 10, linkValue))

	dateValue := ""
	dateFound := false
	if node, ok := firstSelectorMatch(doc, textmetrics.DateSelectors); ok {
		dateFound = true
		dateValue = doc.Attr(node, "datetime")
		if dateValue == "" {
			dateValue = doc.Attr(node, "content")
		}
		if dateValue == "" {
			dateValue = trimText(doc, node)
		}
	}
	if dateFound {
		factors = append(factors, makeFactor("Publication Date", 8, 8, dateValue))
	} else {
		factors = append(factors, makeFactor("Publication Date", 0, 8, "Not found"))
	}

	freshness := EvaluateFreshness(doc, now)
	freshScore := 0
	freshValue := "No parseable date found"
	if freshness.AgeInMonths != nil {
		age := *freshness.AgeInMonths
		switch {
		case age <= 6:
			freshScore = 12
		case age <= 12:
			freshScore = 9
		case age <= 24:
			freshScore = 5
		default:
			freshScore = 2
		}
		if freshness.HasModifiedDate && freshScore < 12 {
			freshScore += 2
			if freshScore > 12 {
				freshScore = 12
			}
		}
		freshValue = fmt.Sprintf("%d months old", age)
		if freshness.HasModifiedDate {
			freshValue += ", modified date present"
		}
	}
	factors = append(factors, makeFactor("Content Freshness", freshScore, 12, freshValue))
	rawData["freshness"] = freshness

	structuredDataTypes := topLevelJSONLDTypes(doc)
	ogTags := []string{"og:title", "og:description", "og:image", "og:type"}
	foundOgTags := 0
	for _, tag := range ogTags {
		if len(doc.SelectAll(fmt.Sprintf(`meta[property=%q]`, tag))) > 0 {
			foundOgTags++
		}
	}
	canonical := attrOfFirst(doc, `link[rel="canonical"]`, "href")

	structuredScore := 0
	if len(structuredDataTypes) > 0 {
		structuredScore += 4
	}
	if foundOgTags >= 3 {
		structuredScore += 4
	} else if foundOgTags > 0 {
		structuredScore += 2
	}
	if canonical != "" {
		structuredScore += 4
	}
	rawData["structuredDataTypes"] = structuredDataTypes

	structuredValue := "No JSON-LD"
	if len(structuredDataTypes) > 0 {
		structuredValue = strings.Join(structuredDataTypes, ", ")
	}
	structuredValue += fmt.Sprintf(", %d/4 OG tags", foundOgTags)
	if canonical != "" {
		structuredValue += ", canonical"
	}
	factors = append(factors, makeFactor("Structured Data", structuredScore, 12, structuredValue))

	completeness := EvaluateSchemaCompleteness(ParseJSONLDObjects(doc))
	schemaScore := 0
	schemaValue := "No recognized JSON-LD schemas found"
	if completeness.TotalTypes > 0 {
		switch {
		case completeness.AvgCompleteness >= 0.8:
			schemaScore = 10
		case completeness.AvgCompleteness >= 0.5:
			schemaScore = 7
		case completeness.AvgCompleteness > 0:
			schemaScore = 4
		}
		schemaValue = fmt.Sprintf("%d schema types, %d%% complete",
			completeness.TotalTypes, int(completeness.AvgCompleteness*100+0.5))
	}
	schemaFactor := makeFactor("Schema Completeness", schemaScore, 10, schemaValue)
	if completeness.TotalTypes == 0 {
		schemaFactor.Status = StatusNeutral
	}
	factors = append(factors, schemaFactor)
	rawData["schemaCompleteness"] = completeness

	entityName := ResolveEntityName(doc)
	consistency := MeasureEntityConsistency(doc, page.Title, entityName)
	consistencyValue := "No identifiable entity name"
	if entityName != "" {
		consistencyValue = fmt.Sprintf("%q found in %d/%d surfaces",
			entityName, consistency.SurfacesFound, consistency.SurfacesChecked)
	}
	consistencyFactor := makeFactor("Entity Consistency", consistency.Score, 10, consistencyValue)
	if entityName == "" {
		consistencyFactor.Status = StatusNeutral
	}
	factors = append(factors, consistencyFactor)
	rawData["entityConsistency"] = consistency

	return newCategory(AuthorityContext, factors), rawData
}

// topLevelJSONLDTypes collects the @type of each ld+json script whose top
// level decodes to an object with a string @type. Arrays and malformed
// blocks contribute nothing here; ParseJSONLDObjects handles the richer
// parse for completeness checks.
func topLevelJSONLDTypes(doc extractor.Document) []string {
	types := []string{}
	for _, script := range doc.SelectAll(`script[type="application/ld+json"]`) {
		var decoded map[string]any
		if err := json.Unmarshal([]byte(doc.Text(script)), &decoded); err != nil {
			continue
		}
		if t, ok := decoded["@type"].(string); ok && t != "" {
			types = append(types, t)
		}
	}
	return types
}
