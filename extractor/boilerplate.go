package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// removeSelectors name the chrome that gets stripped before clean-text
// extraction: scripts, navigation, cookie banners, ads and overlays.
var removeSelectors = []string{
	"script",
	"style",
	"noscript",
	"svg",
	"iframe",
	"nav",
	"header",
	"footer",
	"aside",
	`[role="navigation"]`,
	`[role="banner"]`,
	`[role="contentinfo"]`,
	".sidebar",
	"#sidebar",
	".cookie-banner",
	"#cookie-consent",
	".cookie-notice",
	".nav",
	".navbar",
	".footer",
	".header",
	".menu",
	".ad",
	".ads",
	".advertisement",
	`[class*="cookie"]`,
	`[class*="consent"]`,
	`[class*="popup"]`,
	`[class*="modal"]`,
}

const blockElements = "p,div,td,th,li,h1,h2,h3,h4,h5,h6,dt,dd,br,blockquote,section,article"

var whitespace = regexp.MustCompile(`\s+`)

func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

func stripBoilerplate(doc *goquery.Document) {
	for _, selector := range removeSelectors {
		doc.Find(selector).Remove()
	}
}

// blockSpacedText extracts body text with a space appended to every block
// element, so adjacent blocks do not run their words together.
func blockSpacedText(doc *goquery.Document) string {
	doc.Find(blockElements).AppendHtml(" ")
	return normalizeWhitespace(doc.Find("body").Text())
}
