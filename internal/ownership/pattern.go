// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-02
// Last Modified: 2026-03-05

// Package ownership compiles CODEOWNERS-style glob patterns and resolves
// which teams own a set of changed files.
package ownership

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternError reports a pattern that cannot be compiled.
type PatternError struct {
	Pattern string
	Reason  string
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid ownership pattern %q: %s", e.Pattern, e.Reason)
}

// Matcher is a compiled ownership pattern. It tests slash-separated
// repository-relative paths.
type Matcher struct {
	pattern string
	re      *regexp.Regexp // nil means the pattern matches nothing
}

// Pattern returns the original pattern string the matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Test reports whether the given path matches the compiled pattern.
func (m *Matcher) Test(path string) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(path)
}

// Compile translates a CODEOWNERS-style glob pattern into a Matcher.
//
// Semantics follow the gitignore family: a pattern without a leading slash
// and without inner slashes matches its name at any depth, a leading slash
// anchors the pattern at the repository root, a trailing slash means
// "everything under this directory", and a matched directory also covers
// all of its descendants.
func Compile(pattern string) (*Matcher, error) {
	if pattern == "" {
		return nil, &PatternError{Pattern: pattern, Reason: "empty pattern"}
	}
	if strings.Contains(pattern, "***") {
		return nil, &PatternError{Pattern: pattern, Reason: "three or more consecutive asterisks"}
	}

	// A bare root separator denotes no path at all.
	if pattern == "/" {
		return &Matcher{pattern: pattern}, nil
	}

	segments := strings.Split(pattern, "/")

	if segments[0] == "" {
		// Leading slash: root-relative, drop the empty segment.
		segments = segments[1:]
	} else if len(segments) == 1 || (len(segments) == 2 && segments[1] == "") {
		// A single bare name (optionally with a trailing slash) matches at
		// any depth, so it behaves as if prefixed with "**/".
		if segments[0] != "**" {
			segments = append([]string{"**"}, segments...)
		}
	}

	// Trailing slash: everything under the directory, not the name itself.
	if segments[len(segments)-1] == "" {
		segments[len(segments)-1] = "**"
	}

	var sb strings.Builder
	sb.WriteString("^")
	needSep := false
	for i, seg := range segments {
		last := i == len(segments)-1
		switch {
		case seg == "**":
			switch {
			case len(segments) == 1:
				sb.WriteString(".+")
			case i == 0:
				// Any number of leading components, including zero.
				sb.WriteString("(?:.+/)?")
				needSep = false
			case last:
				sb.WriteString("/.*")
			default:
				// Zero or more intervening components.
				sb.WriteString("(?:/.+)?")
				needSep = true
			}
		case seg == "*":
			if needSep {
				sb.WriteString("/")
			}
			sb.WriteString("[^/]+")
			needSep = true
		default:
			if needSep {
				sb.WriteString("/")
			}
			writeSegment(&sb, seg)
			if last {
				// A matched directory also owns its descendants.
				sb.WriteString("(?:/.*)?")
			}
			needSep = true
		}
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Reason: err.Error()}
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

// writeSegment translates one literal segment character by character.
func writeSegment(sb *strings.Builder, seg string) {
	escaped := false
	for _, r := range seg {
		if escaped {
			sb.WriteString(regexp.QuoteMeta(string(r)))
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '*':
			sb.WriteString("[^/]*")
		case '?':
			sb.WriteString("[^/]")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	if escaped {
		// Dangling backslash escapes nothing; keep it literal.
		sb.WriteString(regexp.QuoteMeta(`\`))
	}
}
