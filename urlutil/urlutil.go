// Package urlutil has small URL helpers shared by the fetcher, extractor
// and HTTP layer.
package urlutil

import (
	"net/url"
	"regexp"
	"strings"
)

var schemePrefix = regexp.MustCompile(`(?i)^https?://`)

// Normalize trims the input, defaults the scheme to https and strips any
// trailing slashes.
func Normalize(input string) (string, error) {
	u := strings.TrimSpace(input)
	if !schemePrefix.MatchString(u) {
		u = "https://" + u
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", &url.Error{Op: "parse", URL: input, Err: url.InvalidHostError("")}
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

// IsValid reports whether input can be normalized into an absolute URL.
func IsValid(input string) bool {
	_, err := Normalize(input)
	return err == nil
}

// SiteRoot returns the scheme and host of rawURL ("https://example.com"),
// defaulting to https when the input has no scheme.
func SiteRoot(rawURL string) (string, error) {
	normalized, err := Normalize(rawURL)
	if err != nil {
		return "", err
	}
	parsed, err := url.Parse(normalized)
	if err != nil {
		return "", err
	}
	return parsed.Scheme + "://" + parsed.Host, nil
}

// Domain returns the hostname of rawURL, or the input unchanged when it
// cannot be parsed.
func Domain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return rawURL
	}
	return parsed.Hostname()
}
