package audit

import (
	"fmt"

	"github.com/geo-audit/backend/extractor"
	"github.com/geo-audit/backend/textmetrics"
)

func auditGroundingSignals(page *extractor.Page) (Category, map[string]any) {
	text := page.CleanText
	var factors []Factor

	externalLinks := page.ExternalLinks
	extScore := thresholdScore(float64(len(externalLinks)), []bracket{
		{6, 13}, {3, 10}, {1, 6}, {0, 0},
	})
	factors = append(factors, makeFactor("External References", extScore, 13,
		fmt.Sprintf("%d external links", len(externalLinks))))

	citationCount := textmetrics.CountPatternMatches(text, textmetrics.CitationPatterns)
	quoteElements := len(page.Doc.SelectAll("blockquote, cite, q"))
	citScore := thresholdScore(float64(citationCount+quoteElements), []bracket{
		{6, 13}, {3, 9}, {1, 5}, {0, 0},
	})
	factors = append(factors, makeFactor("Citation Patterns", citScore, 13,
		fmt.Sprintf("%d citation indicators, %d quote elements", citationCount, quoteElements)))

	numericCount := textmetrics.CountPatternMatches(text, textmetrics.NumericClaimPatterns)
	numScore := thresholdScore(float64(numericCount), []bracket{
		{9, 13}, {4, 9}, {1, 5}, {0, 0},
	})
	factors = append(factors, makeFactor("Numeric Claims", numScore, 13,
		fmt.Sprintf("%d statistical references", numericCount)))

	attrCount := textmetrics.CountPatternMatches(text, textmetrics.AttributionPatterns)
	attrScore := thresholdScore(float64(attrCount), []bracket{
		{5, 11}, {2, 8}, {1, 4}, {0, 0},
	})
	factors = append(factors, makeFactor("Attribution Indicators", attrScore, 11,
		fmt.Sprintf("%d attribution patterns", attrCount)))

	quotedAttrCount := textmetrics.CountPatternMatches(text, textmetrics.QuotedAttributionPatterns)
	attributedBlockquotes := len(page.Doc.SelectAll("blockquote cite, blockquote footer, blockquote figcaption"))
	totalQuotedAttr := quotedAttrCount + attributedBlockquotes
	quotedAttrScore := thresholdScore(float64(totalQuotedAttr), []bracket{
		{4, 10}, {2, 7}, {1, 4}, {0, 0},
	})
	quotedFactor := makeFactor("Quoted Attribution", quotedAttrScore, 10,
		fmt.Sprintf("%d attributed quotes", totalQuotedAttr))
	if totalQuotedAttr == 0 {
		quotedFactor.Status = StatusNeutral
	}
	factors = append(factors, quotedFactor)

	links := externalLinks
	if len(links) > 10 {
		links = links[:10]
	}
	return newCategory(GroundingSignals, factors), map[string]any{
		"externalLinks": links,
	}
}
