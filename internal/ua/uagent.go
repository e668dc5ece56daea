package ua

import (
	"fmt"
	"math/rand/v2"

	"github.com/agux/uagen/internal/logging"
	"github.com/agux/uagen/internal/util"
)

var log = logging.Logger

// agentFormat is filled with OS version, locale, engine and browser.
const agentFormat = "Mozilla/5.0 (%s; %s) %s %s"

// maxPrealloc bounds the capacity reserved up front by Many; larger
// batches grow as they are generated.
const maxPrealloc = 1024

var defaultGenerator = NewGenerator(nil)

// Generator composes random user agents from the catalog.
// A Generator built on an explicit *rand.Rand is not safe for concurrent use.
type Generator struct {
	r *rand.Rand
}

// NewGenerator returns a Generator drawing from r, or from the process-wide
// random source when r is nil.
func NewGenerator(r *rand.Rand) *Generator {
	return &Generator{r: r}
}

// NewSeededGenerator returns a Generator whose output is fully determined by seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// One draws a category, then an OS version, a browser of that same category
// and a locale, and formats them into a single user agent.
func (g *Generator) One() string {
	c := util.Pick(g.r, catalog)
	osVersion := util.Pick(g.r, c.OSVersions)
	b := util.Pick(g.r, c.Browsers)
	locale := util.Pick(g.r, locales)
	log.Debugf("generated %s agent with %s", c.Name, b.Name)
	return fmt.Sprintf(agentFormat, osVersion, locale, b.Engine, b.Name)
}

// Many returns n independently generated agents. n <= 0 yields an empty slice.
func (g *Generator) Many(n int) []string {
	agents := newAgentSlice(n)
	for i := 0; i < n; i++ {
		agents = append(agents, g.One())
	}
	return agents
}

// newAgentSlice returns an empty, non-nil slice sized for n agents,
// reserving no more than maxPrealloc entries.
func newAgentSlice(n int) []string {
	return make([]string, 0, max(0, min(n, maxPrealloc)))
}

// GenerateOne returns one random user agent.
func GenerateOne() string {
	return defaultGenerator.One()
}

// GenerateMany returns n random user agents.
func GenerateMany(n int) []string {
	return defaultGenerator.Many(n)
}
