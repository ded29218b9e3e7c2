package textmetrics

import (
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Entities holds the four buckets of named entities extracted from page
// text. Buckets are unique, insertion-ordered, and size-capped so the
// output stays bounded on long pages.
type Entities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Places        []string `json:"places"`
	Topics        []string `json:"topics"`
}

// Total returns the combined entity count across all buckets.
func (e Entities) Total() int {
	return len(e.People) + len(e.Organizations) + len(e.Places) + len(e.Topics)
}

const (
	maxPeople        = 10
	maxOrganizations = 10
	maxPlaces        = 10
	maxTopics        = 15
)

var orgSuffix = regexp.MustCompile(
	`\b([A-Z][A-Za-z&]+(?:\s+[A-Z][A-Za-z&]+)*\s+` +
		`(?:Inc|Corp|Corporation|Company|Co|Ltd|LLC|University|Institute|` +
		`Foundation|Agency|Association|Group|Labs|Laboratories|Technologies|Systems))\.?\b`)

var acronym = regexp.MustCompile(`\b[A-Z]{2,6}\b`)

var properSequence = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)

// ExtractEntities runs a light-weight named-entity pass over text. People
// and places come from the prose tagger; organizations and topics are
// pattern-derived since prose only labels PERSON and GPE. Extraction is
// heuristic, not semantic.
func ExtractEntities(text string) Entities {
	var people, places []string

	if doc, err := prose.NewDocument(text); err == nil {
		for _, ent := range doc.Entities() {
			switch ent.Label {
			case "PERSON":
				people = appendUnique(people, ent.Text, maxPeople)
			case "GPE":
				places = appendUnique(places, ent.Text, maxPlaces)
			}
		}
	}

	var organizations []string
	for _, m := range orgSuffix.FindAllStringSubmatch(text, -1) {
		organizations = appendUnique(organizations, strings.TrimSpace(m[1]), maxOrganizations)
	}
	for _, m := range acronym.FindAllString(text, -1) {
		organizations = appendUnique(organizations, m, maxOrganizations)
	}

	taken := make(map[string]bool)
	for _, bucket := range [][]string{people, organizations, places} {
		for _, v := range bucket {
			taken[strings.ToLower(v)] = true
		}
	}

	var topics []string
	for _, m := range properSequence.FindAllString(text, -1) {
		if taken[strings.ToLower(m)] {
			continue
		}
		topics = appendUnique(topics, m, maxTopics)
	}

	return Entities{
		People:        nonNil(people),
		Organizations: nonNil(organizations),
		Places:        nonNil(places),
		Topics:        nonNil(topics),
	}
}

func appendUnique(list []string, value string, limit int) []string {
	value = strings.TrimSpace(value)
	if value == "" || len(list) >= limit {
		return list
	}
	for _, existing := range list {
		if strings.EqualFold(existing, value) {
			return list
		}
	}
	return append(list, value)
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
