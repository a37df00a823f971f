package matchmaking_test

import (
	"fmt"
	"testing"

	"github.com/mauv0809/court-planner/internal/matchmaking"
	"github.com/stretchr/testify/assert"
)

func TestQuadruples(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0}, {3, 0}, {4, 1}, {5, 5}, {6, 15}, {8, 70}, {14, 1001},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			pool := make([]string, tt.n)
			for i := range pool {
				pool[i] = fmt.Sprintf("P%02d", i)
			}
			quads := matchmaking.Quadruples(pool)
			assert.Len(t, quads, tt.want)

			seen := make(map[[4]string]bool)
			for _, q := range quads {
				assert.False(t, seen[q], "combination %v repeated", q)
				seen[q] = true
				assert.True(t, q[0] < q[1] && q[1] < q[2] && q[2] < q[3], "pool order kept in %v", q)
			}
		})
	}
}

func TestTeamSplits(t *testing.T) {
	splits := matchmaking.TeamSplits([4]string{"a", "b", "c", "d"})

	assert.Equal(t, [3]matchmaking.Split{
		{A: [2]string{"a", "b"}, B: [2]string{"c", "d"}},
		{A: [2]string{"a", "c"}, B: [2]string{"b", "d"}},
		{A: [2]string{"a", "d"}, B: [2]string{"b", "c"}},
	}, splits)
}
