// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-02
// Last Modified: 2026-03-05

package ownership

import (
	"reflect"
	"testing"
)

const sampleRules = `# Ownership rules
# Blank lines and comments are ignored.

/docs/          @similigh/docs
*.go            @similigh/backend @similigh/platform
/web/           @similigh/frontend unrelated@example.com
/infra/         @other-org/ops
README.md       @similigh/docs
`

func TestParseRules(t *testing.T) {
	rules := ParseRules(sampleRules, "@similigh/")

	// The /infra/ line references no recognized team and is dropped.
	if len(rules) != 4 {
		t.Fatalf("Expected 4 rules, got %d", len(rules))
	}

	if rules[0].Pattern != "/docs/" {
		t.Errorf("Expected first pattern '/docs/', got %q", rules[0].Pattern)
	}
	if !reflect.DeepEqual(rules[1].Teams, []string{"backend", "platform"}) {
		t.Errorf("Expected teams [backend platform], got %v", rules[1].Teams)
	}
	if !reflect.DeepEqual(rules[2].Teams, []string{"frontend"}) {
		t.Errorf("Expected non-team owners to be dropped, got %v", rules[2].Teams)
	}
}

func TestParseRules_EmptyInput(t *testing.T) {
	if rules := ParseRules("", "@similigh/"); len(rules) != 0 {
		t.Errorf("Expected no rules from empty text, got %d", len(rules))
	}
	if rules := ParseRules("# only comments\n\n", "@similigh/"); len(rules) != 0 {
		t.Errorf("Expected no rules from comment-only text, got %d", len(rules))
	}
}

func TestNewIndex_SkipsBadPatterns(t *testing.T) {
	rules := []Rule{
		{Pattern: "***bad", Teams: []string{"backend"}},
		{Pattern: "/docs/", Teams: []string{"docs"}},
	}
	idx := NewIndex(rules)
	if idx.Len() != 1 {
		t.Fatalf("Expected 1 compiled rule, got %d", idx.Len())
	}
	teams := idx.Resolve([]string{"docs/a.md"})
	if !reflect.DeepEqual(teams, []string{"docs"}) {
		t.Errorf("Expected [docs], got %v", teams)
	}
}

func TestResolve_UnionAcrossRules(t *testing.T) {
	idx := Load(sampleRules, "@similigh/")

	tests := []struct {
		name  string
		files []string
		teams []string
	}{
		{"single file single rule", []string{"docs/guide.md"}, []string{"docs"}},
		{"one file, two matching rules", []string{"web/app.go"}, []string{"backend", "frontend", "platform"}},
		{"multiple files union", []string{"docs/a.md", "server/main.go"}, []string{"backend", "docs", "platform"}},
		{"no matches", []string{"LICENSE"}, []string{}},
		{"no files", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Resolve(tt.files)
			if len(got) == 0 && len(tt.teams) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.teams) {
				t.Errorf("Expected teams %v, got %v", tt.teams, got)
			}
		})
	}
}

func TestResolve_OrderIndependent(t *testing.T) {
	files := []string{"docs/a.md", "web/app.go", "cmd/main.go"}
	reversedFiles := []string{"cmd/main.go", "web/app.go", "docs/a.md"}

	rules := ParseRules(sampleRules, "@similigh/")
	reversedRules := make([]Rule, len(rules))
	for i, r := range rules {
		reversedRules[len(rules)-1-i] = r
	}

	base := NewIndex(rules).Resolve(files)
	permutedFiles := NewIndex(rules).Resolve(reversedFiles)
	permutedRules := NewIndex(reversedRules).Resolve(files)

	if !reflect.DeepEqual(base, permutedFiles) {
		t.Errorf("Permuting files changed the result: %v vs %v", base, permutedFiles)
	}
	if !reflect.DeepEqual(base, permutedRules) {
		t.Errorf("Permuting rules changed the result: %v vs %v", base, permutedRules)
	}
}
