package cluster_test

import (
	"testing"

	"github.com/munchroute/munchroute/cluster"
	"github.com/stretchr/testify/require"
)

func TestSearchParameters_FindsObviousSplit(t *testing.T) {
	points := twoGroups()

	res, err := cluster.SearchParameters(points, [2]float64{0.2, 2.0}, [2]int{2, 3}, 0.2, cluster.DefaultOptions())
	require.NoError(t, err)

	// Every trialed radius keeps the two tight groups apart (they sit ~5 km
	// from each other), so the winner must recover exactly the two groups.
	require.NotContains(t, res.Clusters, cluster.Noise)
	require.Len(t, res.Clusters, 2)
	require.Greater(t, res.Score, 0.5, "well-separated groups should score high")

	// 10 radius steps × 2 sizes.
	require.Len(t, res.Trials, 20)
	for _, tr := range res.Trials {
		require.GreaterOrEqual(t, tr.RadiusKm, 0.2)
		require.LessOrEqual(t, tr.RadiusKm, 2.0+1e-6)
	}
}

func TestSearchParameters_Deterministic(t *testing.T) {
	points := twoGroups()

	first, err := cluster.SearchParameters(points, [2]float64{0.2, 1.0}, [2]int{2, 3}, 0.2, cluster.DefaultOptions())
	require.NoError(t, err)

	again, err := cluster.SearchParameters(points, [2]float64{0.2, 1.0}, [2]int{2, 3}, 0.2, cluster.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, first.RadiusKm, again.RadiusKm)
	require.Equal(t, first.MinGroupSize, again.MinGroupSize)
	require.Equal(t, first.Score, again.Score)
	require.Equal(t, first.Clusters, again.Clusters)
}

func TestSearchParameters_RangeValidation(t *testing.T) {
	points := twoGroups()
	opts := cluster.DefaultOptions()

	cases := []struct {
		name   string
		radius [2]float64
		sizes  [2]int
		step   float64
		want   error
	}{
		{"zero lower radius", [2]float64{0, 1}, [2]int{2, 3}, 0.1, cluster.ErrBadRange},
		{"inverted radius", [2]float64{1, 0.5}, [2]int{2, 3}, 0.1, cluster.ErrBadRange},
		{"zero step", [2]float64{0.5, 1}, [2]int{2, 3}, 0, cluster.ErrBadRange},
		{"size below one", [2]float64{0.5, 1}, [2]int{0, 3}, 0.1, cluster.ErrBadMinGroupSize},
		{"inverted sizes", [2]float64{0.5, 1}, [2]int{3, 2}, 0.1, cluster.ErrBadRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cluster.SearchParameters(points, tc.radius, tc.sizes, tc.step, opts)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := cluster.SearchParameters(nil, [2]float64{0.5, 1}, [2]int{2, 3}, 0.1, opts)
	require.ErrorIs(t, err, cluster.ErrNoPoints)
}
