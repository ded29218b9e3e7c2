package textmetrics

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"  spaced   out\twords\n", 3},
	}
	for _, tt := range tests {
		if got := CountWords(tt.text); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"Short. Ok.", 0},
		{"This is a sentence. This is another!", 2},
		{"Is it a question? Yes indeed it is.", 2},
		{"No terminal punctuation at all", 1},
	}
	for _, tt := range tests {
		if got := CountSentences(tt.text); got != tt.want {
			t.Errorf("CountSentences(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestSyllableCount(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"the", 1},
		{"hello", 2},
		{"syllable", 3},
		{"maintenance", 3},
		{"xyz", 1},
	}
	for _, tt := range tests {
		if got := SyllableCount(tt.word); got != tt.want {
			t.Errorf("SyllableCount(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestFleschReadingEase(t *testing.T) {
	if got := FleschReadingEase(""); got != 0 {
		t.Errorf("Empty text should score 0, got %v", got)
	}

	simple := "The cat sat on the mat. The dog ran to the park. We like short words."
	dense := "Institutional organizations systematically operationalize multidimensional considerations regarding infrastructural heterogeneity."
	if FleschReadingEase(simple) <= FleschReadingEase(dense) {
		t.Error("Simple prose should read easier than dense jargon")
	}
}

func TestAvgSentenceLength(t *testing.T) {
	text := "One two three four five six. One two three four."
	// 10 words over 2 sentences.
	if got := AvgSentenceLength(text); got != 5 {
		t.Errorf("AvgSentenceLength = %d, want 5", got)
	}
	if got := AvgSentenceLength(""); got != 0 {
		t.Errorf("Empty text should average 0, got %d", got)
	}
}

func TestComplexWordCount(t *testing.T) {
	text := "The operationalization of internationalization is complicated."
	if got := ComplexWordCount(text); got < 2 {
		t.Errorf("Expected at least 2 complex words, got %d", got)
	}
	if got := ComplexWordCount("the cat sat"); got != 0 {
		t.Errorf("Short words are not complex, got %d", got)
	}
}

func TestCountPatternMatches(t *testing.T) {
	text := "A widget is defined as a small device. The term refers to hardware."
	if got := CountPatternMatches(text, DefinitionPatterns); got < 2 {
		t.Errorf("Expected at least 2 definition matches, got %d", got)
	}
	if got := CountPatternMatches("nothing here", CitationPatterns); got != 0 {
		t.Errorf("Expected 0 citation matches, got %d", got)
	}
}

func TestCountTransitionWords(t *testing.T) {
	text := "However, the widget failed. Therefore we replaced it. However again."
	got := CountTransitionWords(text, TransitionWords)
	// "however" and "therefore" each count once regardless of repeats.
	if got != 2 {
		t.Errorf("CountTransitionWords = %d, want 2", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate should pass short strings through, got %q", got)
	}
	got := Truncate("this is a longer string", 10)
	if len(got) != 10 || got[7:] != "..." {
		t.Errorf("Truncate(10) = %q, want 7 chars plus ellipsis", got)
	}
}

func TestQuestionHeadingPattern(t *testing.T) {
	matching := []string{
		"What is a widget",
		"How to clean widgets",
		"Why widgets fail",
	}
	for _, h := range matching {
		if !QuestionHeadingPattern.MatchString(h) {
			t.Errorf("QuestionHeadingPattern should match %q", h)
		}
	}
	if QuestionHeadingPattern.MatchString("Widget history") {
		t.Error("QuestionHeadingPattern should not match a plain heading")
	}
}
