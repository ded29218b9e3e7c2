// Package extractor parses raw HTML into the normalized page representation
// the audit engine consumes: clean text, element counts, external links and
// a narrow DOM query capability.
package extractor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/geo-audit/backend/textmetrics"
	"github.com/geo-audit/backend/urlutil"
)

// PageStats carries the element and text counts the auditors score against.
type PageStats struct {
	WordCount         int     `json:"wordCount"`
	SentenceCount     int     `json:"sentenceCount"`
	ParagraphCount    int     `json:"paragraphCount"`
	HeadingCount      int     `json:"headingCount"`
	H1Count           int     `json:"h1Count"`
	H2Count           int     `json:"h2Count"`
	H3Count           int     `json:"h3Count"`
	LinkCount         int     `json:"linkCount"`
	ExternalLinkCount int     `json:"externalLinkCount"`
	ImageCount        int     `json:"imageCount"`
	ImagesWithAlt     int     `json:"imagesWithAlt"`
	ListCount         int     `json:"listCount"`
	ListItemCount     int     `json:"listItemCount"`
	TableCount        int     `json:"tableCount"`
	BoilerplateRatio  float64 `json:"boilerplateRatio"`
	RawByteLength     int     `json:"rawByteLength"`
	CleanTextLength   int     `json:"cleanTextLength"`
}

// ExternalLink is an off-domain anchor found on the page.
type ExternalLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Page is the normalized representation of one fetched page.
type Page struct {
	URL             string         `json:"url"`
	HTML            string         `json:"-"`
	CleanText       string         `json:"-"`
	Title           string         `json:"title"`
	MetaDescription string         `json:"metaDescription"`
	Stats           PageStats      `json:"stats"`
	ExternalLinks   []ExternalLink `json:"externalLinks"`
	Doc             Document       `json:"-"`
}

// Extract parses html into a Page. Parsing failures are the only error
// path; a parseable page always yields a complete Page regardless of
// content.
func Extract(html, pageURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	}

	metaDescription := strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	if metaDescription == "" {
		metaDescription = strings.TrimSpace(doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))
	}

	rawText := normalizeWhitespace(doc.Find("body").Text())

	h1 := doc.Find("h1").Length()
	h2 := doc.Find("h2").Length()
	h3 := doc.Find("h3").Length()

	imagesWithAlt := 0
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if alt, _ := s.Attr("alt"); alt != "" {
			imagesWithAlt++
		}
	})

	pageDomain := urlutil.Domain(pageURL)
	var externalLinks []ExternalLink
	doc.Find(`a[href^="http"]`).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || urlutil.Domain(href) == pageDomain {
			return
		}
		externalLinks = append(externalLinks, ExternalLink{
			URL:  href,
			Text: textmetrics.Truncate(strings.TrimSpace(s.Text()), 50),
		})
	})

	cleanText := extractCleanText(html, pageURL)

	boilerplateRatio := 0.0
	if len(rawText) > 0 {
		boilerplateRatio = 1 - float64(len(cleanText))/float64(len(rawText))
		if boilerplateRatio < 0 {
			boilerplateRatio = 0
		}
		if boilerplateRatio > 1 {
			boilerplateRatio = 1
		}
	}

	stats := PageStats{
		WordCount:         textmetrics.CountWords(cleanText),
		SentenceCount:     textmetrics.CountSentences(cleanText),
		ParagraphCount:    doc.Find("p").Length(),
		HeadingCount:      h1 + h2 + h3 + doc.Find("h4, h5, h6").Length(),
		H1Count:           h1,
		H2Count:           h2,
		H3Count:           h3,
		LinkCount:         doc.Find("a[href]").Length(),
		ExternalLinkCount: len(externalLinks),
		ImageCount:        doc.Find("img").Length(),
		ImagesWithAlt:     imagesWithAlt,
		ListCount:         doc.Find("ul, ol").Length(),
		ListItemCount:     doc.Find("li").Length(),
		TableCount:        doc.Find("table").Length(),
		BoilerplateRatio:  boilerplateRatio,
		RawByteLength:     len(html),
		CleanTextLength:   len(cleanText),
	}

	return &Page{
		URL:             pageURL,
		HTML:            html,
		CleanText:       cleanText,
		Title:           title,
		MetaDescription: metaDescription,
		Stats:           stats,
		ExternalLinks:   externalLinks,
		Doc:             NewDocument(doc),
	}, nil
}

// extractCleanText prefers readability's main-content extraction and falls
// back to selector-based boilerplate stripping when readability finds
// nothing usable.
func extractCleanText(html, pageURL string) string {
	if parsed, err := url.Parse(pageURL); err == nil {
		article, err := readability.FromReader(strings.NewReader(html), parsed)
		if err == nil {
			if text := normalizeWhitespace(article.TextContent); text != "" {
				return text
			}
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	stripBoilerplate(doc)
	return blockSpacedText(doc)
}
