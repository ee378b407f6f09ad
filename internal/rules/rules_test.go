package rules

import (
	"testing"
)

func TestForAllMembership(t *testing.T) {
	set := For(All)

	for _, name := range []string{"target", "bin", "obj", "node_modules", ".venv", "__pycache__", "pkg", "build"} {
		if !set.Contains(name) {
			t.Errorf("For(All) missing %q", name)
		}
	}
	if set.Contains("src") {
		t.Error("For(All) must not contain \"src\"")
	}
}

func TestForTable(t *testing.T) {
	cases := []struct {
		eco  Ecosystem
		want []string
	}{
		{Rust, []string{"target"}},
		{Python, []string{".venv", "__pycache__"}},
		{JavaScript, []string{"node_modules"}},
		{Java, []string{"target", "build"}},
		{Go, []string{"bin", "pkg"}},
		{DotNet, []string{"bin", "obj"}},
	}
	for _, tc := range cases {
		set := For(tc.eco)
		if len(set) != len(tc.want) {
			t.Errorf("For(%s) has %d names, want %d", tc.eco, len(set), len(tc.want))
		}
		for _, name := range tc.want {
			if !set.Contains(name) {
				t.Errorf("For(%s) missing %q", tc.eco, name)
			}
		}
	}
}

func TestForTotality(t *testing.T) {
	for _, eco := range []Ecosystem{Rust, Python, JavaScript, Java, Go, DotNet, All} {
		if len(For(eco)) == 0 {
			t.Errorf("For(%s) is empty", eco)
		}
	}
}

func TestMatchingIsCaseSensitive(t *testing.T) {
	set := For(JavaScript)
	if set.Contains("NODE_MODULES") || set.Contains("Node_Modules") {
		t.Error("matching must be case-sensitive")
	}
}

func TestParse(t *testing.T) {
	for _, eco := range []Ecosystem{Rust, Python, JavaScript, Java, Go, DotNet, All} {
		got, err := Parse(eco.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", eco.String(), err)
		}
		if got != eco {
			t.Errorf("Parse(%q) = %v, want %v", eco.String(), got, eco)
		}
	}
	if _, err := Parse("cobol"); err == nil {
		t.Error("Parse(\"cobol\") should fail")
	}
}

func TestIndicators(t *testing.T) {
	if got := Indicators(Rust, "target"); len(got) != 1 || got[0] != "Cargo.toml" {
		t.Errorf("Indicators(Rust, target) = %v", got)
	}
	// Under All, "target" is claimed by both Rust and Java.
	all := Indicators(All, "target")
	want := map[string]bool{"Cargo.toml": false, "pom.xml": false}
	for _, p := range all {
		if _, ok := want[p]; ok {
			want[p] = true
		}
	}
	for p, seen := range want {
		if !seen {
			t.Errorf("Indicators(All, target) missing %q (got %v)", p, all)
		}
	}
	if got := Indicators(JavaScript, "target"); got != nil {
		t.Errorf("Indicators(JavaScript, target) = %v, want none", got)
	}
}

func TestMatchIndicator(t *testing.T) {
	cases := []struct {
		pattern, name string
		want          bool
	}{
		{"Cargo.toml", "Cargo.toml", true},
		{"Cargo.toml", "cargo.toml", false},
		{"*.csproj", "App.csproj", true},
		{"*.csproj", "App.fsproj", false},
		{"*.sln", "Solution.sln", true},
	}
	for _, tc := range cases {
		if got := MatchIndicator(tc.pattern, tc.name); got != tc.want {
			t.Errorf("MatchIndicator(%q, %q) = %v, want %v", tc.pattern, tc.name, got, tc.want)
		}
	}
}
