// Package rules holds the static mapping from language ecosystems to the
// build-artifact directory names begone is allowed to remove.
package rules

import (
	"fmt"
	"strings"
)

// Ecosystem selects which set of artifact directory names is active for a run.
type Ecosystem int

const (
	Rust Ecosystem = iota
	Python
	JavaScript
	Java
	Go
	DotNet
	All
)

// String returns the CLI spelling of the ecosystem.
func (e Ecosystem) String() string {
	switch e {
	case Rust:
		return "rust"
	case Python:
		return "python"
	case JavaScript:
		return "js"
	case Java:
		return "java"
	case Go:
		return "go"
	case DotNet:
		return "dotnet"
	case All:
		return "all"
	}
	return fmt.Sprintf("Ecosystem(%d)", int(e))
}

// kinds lists every concrete ecosystem, i.e. everything except All.
var kinds = []Ecosystem{Rust, Python, JavaScript, Java, Go, DotNet}

// Parse maps a CLI spelling to its Ecosystem.
func Parse(s string) (Ecosystem, error) {
	switch strings.ToLower(s) {
	case "rust":
		return Rust, nil
	case "python":
		return Python, nil
	case "js":
		return JavaScript, nil
	case "java":
		return Java, nil
	case "go":
		return Go, nil
	case "dotnet":
		return DotNet, nil
	case "all":
		return All, nil
	}
	return 0, fmt.Errorf("unknown ecosystem %q", s)
}

// ─── Rule table ──────────────────────────────────────────────────────────────

// RuleSet is the set of directory names targeted for removal. Membership is
// tested once per visited directory, so it stays a hash set.
type RuleSet map[string]struct{}

// Contains reports whether name is targeted. Matching is exact and
// case-sensitive, including on case-insensitive filesystems.
func (r RuleSet) Contains(name string) bool {
	_, ok := r[name]
	return ok
}

// artifactNames maps each concrete ecosystem to the directory names its
// tooling regenerates from scratch.
var artifactNames = map[Ecosystem][]string{
	Rust:       {"target"},
	Python:     {".venv", "__pycache__"},
	JavaScript: {"node_modules"},
	Java:       {"target", "build"},
	Go:         {"bin", "pkg"},
	DotNet:     {"bin", "obj"},
}

// For returns the RuleSet for the given ecosystem. All returns the
// deduplicated union of every concrete ecosystem ("target" and "bin" appear
// in two tables each). The result is freshly built and safe to retain.
func For(e Ecosystem) RuleSet {
	set := make(RuleSet)
	if e == All {
		for _, k := range kinds {
			for _, name := range artifactNames[k] {
				set[name] = struct{}{}
			}
		}
		return set
	}
	for _, name := range artifactNames[e] {
		set[name] = struct{}{}
	}
	return set
}

// ─── Project indicators ──────────────────────────────────────────────────────

// indicatorFiles maps each concrete ecosystem to the manifest files that mark
// a directory as a project root of that ecosystem. Entries starting with "*"
// are suffix patterns (e.g. "*.csproj").
var indicatorFiles = map[Ecosystem][]string{
	Rust:       {"Cargo.toml"},
	Python:     {"requirements.txt", "pyproject.toml", "setup.py", "Pipfile"},
	JavaScript: {"package.json"},
	Java:       {"pom.xml", "build.gradle", "build.gradle.kts"},
	Go:         {"go.mod", "go.sum"},
	DotNet:     {"*.csproj", "*.fsproj", "*.sln"},
}

// Indicators returns the project manifest patterns that justify removing the
// named artifact directory under the given selection. For All, a name is
// claimed by every ecosystem whose table contains it, so "target" next to
// either Cargo.toml or pom.xml qualifies.
func Indicators(e Ecosystem, name string) []string {
	var out []string
	for _, k := range kinds {
		if e != All && e != k {
			continue
		}
		for _, n := range artifactNames[k] {
			if n == name {
				out = append(out, indicatorFiles[k]...)
				break
			}
		}
	}
	return out
}

// MatchIndicator reports whether fileName satisfies the indicator pattern.
func MatchIndicator(pattern, fileName string) bool {
	if strings.HasPrefix(pattern, "*") {
		return strings.HasSuffix(fileName, pattern[1:])
	}
	return pattern == fileName
}
