package util

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickSingle(t *testing.T) {
	assert.Equal(t, "only", Pick(nil, []string{"only"}))
	assert.Equal(t, 7, Pick(rand.New(rand.NewPCG(1, 2)), []int{7}))
}

func TestPickCoverage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	tests := []struct {
		name string
		r    *rand.Rand
	}{
		{"global source", nil},
		{"seeded source", rand.New(rand.NewPCG(11, 13))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := make(map[string]int)
			const draws = 5000
			for i := 0; i < draws; i++ {
				counts[Pick(tt.r, items)]++
			}
			assert.Len(t, counts, len(items))
			for _, it := range items {
				// expected 1000 each; a generous band still catches a biased pick
				assert.InDelta(t, draws/len(items), counts[it], 250, "item %s", it)
			}
		})
	}
}

func TestPickSeededIsReproducible(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	a := rand.New(rand.NewPCG(5, 5))
	b := rand.New(rand.NewPCG(5, 5))
	for i := 0; i < 100; i++ {
		assert.Equal(t, Pick(a, items), Pick(b, items))
	}
}
