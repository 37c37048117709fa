// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-02
// Last Modified: 2026-03-05

package ownership

import (
	"log"
	"sort"
	"strings"
)

// Rule pairs one ownership pattern with the teams that own matching paths.
type Rule struct {
	Pattern string
	Teams   []string
}

// compiledRule is a Rule with its matcher attached.
type compiledRule struct {
	rule    Rule
	matcher *Matcher
}

// Index is an ordered set of compiled ownership rules for one repository.
// Build one per analysis run and pass it by value ownership; there is no
// shared cache behind it.
type Index struct {
	rules []compiledRule
}

// ParseRules parses CODEOWNERS-style text into ordered rules.
//
// Blank lines and comment lines are skipped. Each remaining line is split
// on whitespace into a pattern followed by owner tokens; only owners
// carrying teamPrefix are kept (with the prefix stripped), and a line with
// no such owners yields no rule.
func ParseRules(text, teamPrefix string) []Rule {
	var rules []Rule
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) < 2 {
			continue
		}

		var teams []string
		for _, owner := range fields[1:] {
			if !strings.HasPrefix(owner, teamPrefix) {
				continue
			}
			team := strings.TrimPrefix(owner, teamPrefix)
			if team != "" {
				teams = append(teams, team)
			}
		}
		if len(teams) == 0 {
			continue
		}

		rules = append(rules, Rule{Pattern: fields[0], Teams: teams})
	}
	return rules
}

// NewIndex compiles rules into an Index. Rules whose pattern fails to
// compile are skipped with a warning so one bad line does not take down
// the whole rule file.
func NewIndex(rules []Rule) *Index {
	idx := &Index{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		m, err := Compile(r.Pattern)
		if err != nil {
			log.Printf("[ownership] Skipping rule: %v", err)
			continue
		}
		idx.rules = append(idx.rules, compiledRule{rule: r, matcher: m})
	}
	return idx
}

// Load parses rule text and compiles it in one step.
func Load(text, teamPrefix string) *Index {
	return NewIndex(ParseRules(text, teamPrefix))
}

// Len returns the number of compiled rules in the index.
func (idx *Index) Len() int {
	return len(idx.rules)
}

// Resolve returns the sorted union of teams owning any of the given files.
// Every matching rule contributes its teams; later rules never override
// earlier ones. Empty input yields an empty result.
func (idx *Index) Resolve(files []string) []string {
	seen := make(map[string]bool)
	for _, file := range files {
		for _, cr := range idx.rules {
			if !cr.matcher.Test(file) {
				continue
			}
			for _, team := range cr.rule.Teams {
				seen[team] = true
			}
		}
	}

	teams := make([]string, 0, len(seen))
	for team := range seen {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}
