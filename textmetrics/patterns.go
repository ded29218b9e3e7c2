package textmetrics

import "regexp"

// Pattern groups used by the category auditors. Each group is an immutable
// list of precompiled patterns; counting re-derives matches per call, so the
// groups are safe to share across goroutines.

var DefinitionPatterns = compile(
	`(?i)\bis\s+defined\s+as\b`,
	`(?i)\brefers?\s+to\b`,
	`(?i)\bmeans?\s+that\b`,
	`(?i)\bis\s+a\s+type\s+of\b`,
	`(?i)\bcan\s+be\s+described\s+as\b`,
	`(?i)\balso\s+known\s+as\b`,
)

var CitationPatterns = compile(
	`\[\d+\]`,
	`\([\w\s]+,?\s*\d{4}\)`,
	`(?i)according\s+to`,
	`(?i)research\s+(?:shows|indicates|suggests)`,
	`(?i)studies?\s+(?:show|indicate|suggest|found)`,
	`(?i)data\s+from`,
	`(?i)as\s+reported\s+by`,
)

var AttributionPatterns = compile(
	`(?i)according\s+to`,
	`(?i)\bsaid\b`,
	`(?i)\bstated\b`,
	`(?i)\breported\b`,
	`(?i)\bcited\s+by\b`,
)

var NumericClaimPatterns = compile(
	`\d+(?:\.\d+)?\s*%`,
	`(?i)\d+(?:\.\d+)?\s*(?:million|billion|thousand|trillion)`,
	`\$[\d,.]+`,
	`(?i)increased\s+by`,
	`(?i)decreased\s+by`,
	`(?i)grew\s+by`,
)

var StepPatterns = compile(
	`(?i)step\s+\d+`,
	`(?m)^\s*\d+\.\s+\w`,
	`(?i)\bfirst(?:ly)?,?\s`,
	`(?i)\bsecond(?:ly)?,?\s`,
	`(?i)\bfinally,?\s`,
	`(?i)\bhow\s+to\b`,
)

var SummaryMarkers = compile(
	`(?i)\bin\s+summary\b`,
	`(?i)\bin\s+conclusion\b`,
	`(?i)\bto\s+summarize\b`,
	`(?i)\bkey\s+takeaways?\b`,
	`(?i)\bbottom\s+line\b`,
	`(?i)\btl;?dr\b`,
)

var QuestionPatterns = compile(
	`(?i)what\s+is`,
	`(?i)what\s+are`,
	`(?i)how\s+to`,
	`(?i)how\s+do`,
	`(?i)why\s+is`,
	`(?i)why\s+do`,
	`(?i)when\s+to`,
	`(?i)where\s+to`,
	`(?i)which\s+is`,
	`(?i)who\s+is`,
)

var DirectAnswerPatterns = compile(
	`(?m)^The\s+\w+\s+is\b`,
	`(?m)^It\s+is\b`,
	`(?m)^This\s+is\b`,
	`(?m)^They\s+are\b`,
	`(?i)\bsimply\s+put\b`,
	`(?i)\bin\s+short\b`,
)

var QuotedAttributionPatterns = compile(
	`"[^"]{10,}"\s*[-\x{2013}\x{2014}]\s*[A-Z][a-z]+`,
	`"[^"]{10,}",?\s+said\s+[A-Z]`,
	`"[^"]{10,}",?\s+according\s+to\s+[A-Z]`,
	`according\s+to\s+[A-Z][a-z]+[^,]*,\s*"[^"]{10,}"`,
	`\x{201c}[^\x{201d}]{10,}\x{201d}\s*[-\x{2013}\x{2014}]\s*[A-Z][a-z]+`,
	`\x{201c}[^\x{201d}]{10,}\x{201d},?\s+said\s+[A-Z]`,
)

// QuestionHeadingPattern matches headings framed as questions.
var QuestionHeadingPattern = regexp.MustCompile(
	`(?i)^(?:what|how|why|when|where|which|who|can|do|does|is|are|should|will)\b`)

// TransitionWords are matched by case-insensitive substring containment, not
// word boundaries; a phrase counts once no matter how often it appears.
var TransitionWords = []string{
	"however", "therefore", "moreover", "furthermore", "consequently",
	"additionally", "in contrast", "similarly", "as a result", "for example",
	"for instance", "on the other hand", "nevertheless", "meanwhile",
	"likewise", "in addition", "specifically", "in particular", "notably",
	"importantly",
}

// AICrawlers is the fixed set of generative-engine crawlers the robots.txt
// evaluation classifies.
var AICrawlers = []string{
	"GPTBot",
	"ChatGPT-User",
	"ClaudeBot",
	"PerplexityBot",
	"Google-Extended",
}

var AuthorSelectors = []string{
	`[rel="author"]`,
	`.author`,
	`.byline`,
	`[itemprop="author"]`,
	`.post-author`,
	`.entry-author`,
	`meta[name="author"]`,
}

var DateSelectors = []string{
	`time[datetime]`,
	`[itemprop="datePublished"]`,
	`[itemprop="dateModified"]`,
	`.published`,
	`.post-date`,
	`.entry-date`,
	`meta[property="article:published_time"]`,
	`meta[property="article:modified_time"]`,
}

var ModifiedDateSelectors = []string{
	`[itemprop="dateModified"]`,
	`meta[property="article:modified_time"]`,
}

var PublishDateSelectors = []string{
	`time[datetime]`,
	`[itemprop="datePublished"]`,
	`meta[property="article:published_time"]`,
}

func compile(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}
