package audit

import (
	"fmt"
	"strings"

	"github.com/geo-audit/backend/extractor"
)

// ImageAccessibility is the evidence behind the Image Accessibility factor.
type ImageAccessibility struct {
	ImageCount      int `json:"imageCount"`
	ImagesWithAlt   int `json:"imagesWithAlt"`
	FigcaptionCount int `json:"figcaptionCount"`
}

func auditContentExtractability(page *extractor.Page, fetch FetchInfo, signals *DomainSignals) (Category, map[string]any) {
	var factors []Factor
	rawData := map[string]any{}

	fetchScore := 0
	switch {
	case fetch.StatusCode == 200:
		fetchScore = 12
	case fetch.StatusCode < 400:
		fetchScore = 8
	}
	factors = append(factors, makeFactor("Fetch Success", fetchScore, 12,
		fmt.Sprintf("HTTP %d in %dms", fetch.StatusCode, fetch.FetchTimeMs)))

	extractRatio := 0.0
	if page.Stats.RawByteLength > 0 {
		extractRatio = float64(page.Stats.CleanTextLength) / float64(page.Stats.RawByteLength)
	}
	extractScore := 2
	switch {
	case extractRatio >= 0.05 && extractRatio <= 0.15:
		extractScore = 12
	case extractRatio > 0.15:
		extractScore = 10
	case extractRatio >= 0.01:
		extractScore = 8
	}
	factors = append(factors, makeFactor("Text Extraction Quality", extractScore, 12,
		fmt.Sprintf("%.1f%% content ratio", extractRatio*100)))

	bpRatio := page.Stats.BoilerplateRatio
	bpScore := thresholdScore(1-bpRatio, []bracket{
		{0.7, 12}, {0.5, 9}, {0.3, 6}, {0, 2},
	})
	factors = append(factors, makeFactor("Boilerplate Ratio", bpScore, 12,
		fmt.Sprintf("%.0f%% boilerplate", bpRatio*100)))

	wc := page.Stats.WordCount
	wcScore := 2
	switch {
	case wc >= 300 && wc <= 3000:
		wcScore = 12
	case wc > 3000:
		wcScore = 10
	case wc >= 100:
		wcScore = 8
	}
	factors = append(factors, makeFactor("Word Count Adequacy", wcScore, 12,
		fmt.Sprintf("%d words", wc)))

	if signals != nil {
		access := CheckCrawlerAccess(signals.RobotsTxt)
		blockedCount := len(access.Blocked)
		crawlerScore := 0
		switch {
		case blockedCount == 0:
			crawlerScore = 10
		case blockedCount <= 2:
			crawlerScore = 6
		case blockedCount <= 4:
			crawlerScore = 3
		}
		crawlerValue := "All major AI crawlers allowed"
		if blockedCount > 0 {
			crawlerValue = strings.Join(access.Blocked, ", ") + " blocked in robots.txt"
		}
		factors = append(factors, makeFactor("AI Crawler Access", crawlerScore, 10, crawlerValue))
		rawData["crawlerAccess"] = access

		hasLlms := signals.LLMsTxtExists
		hasLlmsFull := signals.LLMsFullTxtExists
		llmsScore := 0
		llmsValue := "Not found"
		switch {
		case hasLlms && hasLlmsFull:
			llmsScore = 6
			llmsValue = "llms.txt + llms-full.txt found"
		case hasLlms:
			llmsScore = 4
			llmsValue = "llms.txt found"
		case hasLlmsFull:
			llmsScore = 4
			llmsValue = "llms-full.txt found"
		}
		llmsFactor := makeFactor("LLMs.txt Presence", llmsScore, 6, llmsValue)
		if !hasLlms && !hasLlmsFull {
			llmsFactor.Status = StatusNeutral
		}
		factors = append(factors, llmsFactor)
	}

	imageCount := page.Stats.ImageCount
	imagesWithAlt := page.Stats.ImagesWithAlt
	figcaptionCount := len(page.Doc.SelectAll("figure figcaption"))

	imageScore := 0
	imageValue := "No images found"
	if imageCount > 0 {
		altRatio := float64(imagesWithAlt) / float64(imageCount)
		switch {
		case altRatio >= 0.9:
			imageScore += 5
		case altRatio >= 0.5:
			imageScore += 3
		default:
			imageScore++
		}
		imageValue = fmt.Sprintf("%d/%d images have alt text", imagesWithAlt, imageCount)
		if figcaptionCount > 0 {
			imageScore += 3
			imageValue += fmt.Sprintf(", %d figcaptions", figcaptionCount)
		}
	}
	imageFactor := makeFactor("Image Accessibility", imageScore, 8, imageValue)
	if imageCount == 0 {
		imageFactor.Status = StatusNeutral
	}
	factors = append(factors, imageFactor)

	rawData["title"] = page.Title
	rawData["metaDescription"] = page.MetaDescription
	rawData["wordCount"] = wc
	rawData["imageAccessibility"] = ImageAccessibility{
		ImageCount:      imageCount,
		ImagesWithAlt:   imagesWithAlt,
		FigcaptionCount: figcaptionCount,
	}

	return newCategory(ContentExtractability, factors), rawData
}
