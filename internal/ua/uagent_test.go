package ua

import (
	"math"
	"strings"
	"testing"

	"github.com/mssola/useragent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parsedAgent struct {
	category string
	os       string
	locale   string
	browser  Browser
}

// parseAgent splits an agent back into catalog entries. The OS version and
// the browser must come from the same category.
func parseAgent(s string) (p parsedAgent, ok bool) {
	const prefix = "Mozilla/5.0 ("
	if !strings.HasPrefix(s, prefix) {
		return
	}
	rest := s[len(prefix):]
	for _, c := range catalog {
		for _, o := range c.OSVersions {
			if !strings.HasPrefix(rest, o+"; ") {
				continue
			}
			afterOS := rest[len(o)+2:]
			for _, l := range locales {
				if !strings.HasPrefix(afterOS, l+") ") {
					continue
				}
				tail := afterOS[len(l)+2:]
				for _, b := range c.Browsers {
					if tail == b.Engine+" "+b.Name {
						return parsedAgent{c.Name, o, l, b}, true
					}
				}
			}
		}
	}
	return
}

func TestOneMatchesTemplate(t *testing.T) {
	tests := []struct {
		name string
		gen  *Generator
	}{
		{"default", defaultGenerator},
		{"seeded", NewSeededGenerator(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				s := tt.gen.One()
				_, ok := parseAgent(s)
				require.True(t, ok, "agent does not match template: %s", s)
			}
		})
	}
}

func TestOneParsesAsMozillaAgent(t *testing.T) {
	g := NewSeededGenerator(99)
	for i := 0; i < 200; i++ {
		s := g.One()
		agent := useragent.New(s)
		assert.Equal(t, "5.0", agent.Mozilla(), "agent %s", s)
		assert.Equal(t, s, agent.UA())
	}
}

func TestMany(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"several", 37, 37},
		{"negative", -4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateMany(tt.n)
			require.NotNil(t, got)
			assert.Len(t, got, tt.want)
			for _, s := range got {
				_, ok := parseAgent(s)
				assert.True(t, ok, "agent does not match template: %s", s)
			}
		})
	}
}

func TestNewAgentSliceCapsCapacity(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantCap int
	}{
		{"negative", -1, 0},
		{"zero", 0, 0},
		{"small", 10, 10},
		{"at bound", maxPrealloc, maxPrealloc},
		{"above bound", maxPrealloc + 1, maxPrealloc},
		{"billion", 1_000_000_000, maxPrealloc},
		{"max int", math.MaxInt, maxPrealloc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			require.NotPanics(t, func() { got = newAgentSlice(tt.n) })
			require.NotNil(t, got)
			assert.Empty(t, got)
			assert.Equal(t, tt.wantCap, cap(got))
		})
	}
}

func TestManyAboveBound(t *testing.T) {
	got := NewSeededGenerator(3).Many(maxPrealloc + 5)
	assert.Len(t, got, maxPrealloc+5)
}

func TestGenerateOne(t *testing.T) {
	s := GenerateOne()
	assert.NotEmpty(t, s)
	_, ok := parseAgent(s)
	assert.True(t, ok, s)
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	a := NewSeededGenerator(2024).Many(50)
	b := NewSeededGenerator(2024).Many(50)
	c := NewSeededGenerator(2025).Many(50)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCoverage(t *testing.T) {
	const draws = 10000
	g := NewSeededGenerator(31337)

	categories := make(map[string]int)
	browsers := make(map[string]map[string]int)
	localesSeen := make(map[string]bool)
	for i := 0; i < draws; i++ {
		s := g.One()
		p, ok := parseAgent(s)
		require.True(t, ok, s)
		categories[p.category]++
		if browsers[p.category] == nil {
			browsers[p.category] = make(map[string]int)
		}
		browsers[p.category][p.browser.Name]++
		localesSeen[p.locale] = true
	}

	expected := draws / len(catalog)
	for _, c := range catalog {
		assert.InDelta(t, expected, categories[c.Name], float64(expected)/5, "category %s", c.Name)
		for _, b := range c.Browsers {
			assert.Positive(t, browsers[c.Name][b.Name], "%s never produced %s", c.Name, b.Name)
		}
	}
	assert.Len(t, localesSeen, len(locales))
}
