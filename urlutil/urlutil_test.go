package urlutil

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"example.com", "https://example.com"},
		{"  example.com  ", "https://example.com"},
		{"http://example.com/", "http://example.com"},
		{"https://example.com/path/", "https://example.com/path"},
		{"HTTPS://example.com", "https://example.com"},
		{"example.com/path?q=1", "https://example.com/path?q=1"},
	}
	for _, c := range cases {
		got, err := Normalize(c.input)
		if err != nil {
			t.Errorf("Normalize(%q) error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestNormalizeRejectsEmptyHost(t *testing.T) {
	for _, input := range []string{"", "   ", "https://"} {
		if _, err := Normalize(input); err == nil {
			t.Errorf("Normalize(%q) should fail", input)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("example.com") {
		t.Error("example.com should be valid")
	}
	if IsValid("") {
		t.Error("Empty input should be invalid")
	}
}

func TestSiteRoot(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"https://example.com/deep/path?q=1", "https://example.com"},
		{"http://example.com:8080/page", "http://example.com:8080"},
		{"example.com/page", "https://example.com"},
	}
	for _, c := range cases {
		got, err := SiteRoot(c.input)
		if err != nil {
			t.Errorf("SiteRoot(%q) error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("SiteRoot(%q) = %q, want %q", c.input, got, c.want)
		}
	}
	if _, err := SiteRoot(""); err == nil {
		t.Error("SiteRoot of empty input should fail")
	}
}

func TestDomain(t *testing.T) {
	if got := Domain("https://sub.example.com/page"); got != "sub.example.com" {
		t.Errorf("Domain = %q", got)
	}
	if got := Domain("not a url"); got != "not a url" {
		t.Errorf("Unparseable input should pass through, got %q", got)
	}
}
