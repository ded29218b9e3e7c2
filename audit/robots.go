package audit

import (
	"strings"

	"github.com/geo-audit/backend/textmetrics"
)

// CrawlerAccess partitions the known AI crawlers by what robots.txt says
// about them. Unknown means a crawler was never addressed by name or
// wildcard; scoring treats that as effectively permissive.
type CrawlerAccess struct {
	Allowed []string `json:"allowed"`
	Blocked []string `json:"blocked"`
	Unknown []string `json:"unknown"`
}

// CheckCrawlerAccess scans robots.txt line by line for each named AI
// crawler, tracking the current User-agent group. A "Disallow: /" under the
// crawler's own group blocks it explicitly; under "*" it blocks by wildcard
// unless the crawler was already addressed by name. A crawler-specific
// "Allow:" marks the crawler found and clears any earlier block.
//
// Ordering quirk, preserved as observed: a crawler-specific Allow after a
// wildcard Disallow unblocks the crawler, but the reverse order is not
// specially handled; the outcome follows scan order.
func CheckCrawlerAccess(robotsTxt string) CrawlerAccess {
	access := CrawlerAccess{
		Allowed: []string{},
		Blocked: []string{},
		Unknown: []string{},
	}
	if robotsTxt == "" {
		access.Unknown = append(access.Unknown, textmetrics.AICrawlers...)
		return access
	}

	lines := strings.Split(robotsTxt, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	for _, crawler := range textmetrics.AICrawlers {
		crawlerLower := strings.ToLower(crawler)
		currentAgent := ""
		blocked := false
		found := false

		for _, line := range lines {
			lower := strings.ToLower(line)
			if strings.HasPrefix(lower, "user-agent:") {
				currentAgent = strings.TrimSpace(directiveValue(lower))
				continue
			}
			if currentAgent != crawlerLower && currentAgent != "*" {
				continue
			}
			if strings.HasPrefix(lower, "disallow:") {
				if strings.TrimSpace(directiveValue(lower)) == "/" {
					if currentAgent == crawlerLower {
						blocked = true
						found = true
					} else if !found {
						blocked = true
					}
				}
			} else if strings.HasPrefix(lower, "allow:") {
				if currentAgent == crawlerLower {
					found = true
					blocked = false
				}
			}
		}

		switch {
		case found && blocked:
			access.Blocked = append(access.Blocked, crawler)
		case found:
			access.Allowed = append(access.Allowed, crawler)
		case blocked:
			access.Blocked = append(access.Blocked, crawler)
		default:
			access.Unknown = append(access.Unknown, crawler)
		}
	}

	return access
}

func directiveValue(line string) string {
	if _, value, ok := strings.Cut(line, ":"); ok {
		return value
	}
	return ""
}
