package mongo

import (
	"regexp"
	"testing"
)

func TestSearchPattern_QuotesMetaCharacters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"(", `\(`},
		{"a[", `a\[`},
		{"dev.ops*", `dev\.ops\*`},
	}
	for _, tc := range cases {
		got := searchPattern(tc.in)
		if got.Pattern != tc.want {
			t.Errorf("searchPattern(%q).Pattern = %q, want %q", tc.in, got.Pattern, tc.want)
		}
		if got.Options != "i" {
			t.Errorf("searchPattern(%q).Options = %q, want \"i\"", tc.in, got.Options)
		}
		if _, err := regexp.Compile(got.Pattern); err != nil {
			t.Errorf("searchPattern(%q) produced an invalid pattern: %v", tc.in, err)
		}
	}
}

func TestSearchPattern_MatchesLiterally(t *testing.T) {
	re := regexp.MustCompile("(?i)" + searchPattern("a[1]").Pattern)
	if !re.MatchString("team A[1] lead") {
		t.Error("quoted pattern should match the literal text")
	}
	if re.MatchString("a1") {
		t.Error("quoted pattern should not behave as a character class")
	}
}
