package munchroute_test

import (
	"fmt"
	"time"

	"github.com/munchroute/munchroute/cluster"
	"github.com/munchroute/munchroute/geo"
	"github.com/munchroute/munchroute/plan"
)

// Example walks the full pipeline: raw points are grouped by walkable
// density, each group is routed, and the groups are sequenced into one tour
// that is then checked for feasibility.
func Example() {
	points := []geo.Point{
		{ID: "cafe-1", Label: "Cafe", Pos: geo.Coord{Lat: 40.0000, Lon: -111.0000}},
		{ID: "deli-1", Label: "Deli", Pos: geo.Coord{Lat: 40.0005, Lon: -111.0000}},
		{ID: "cafe-2", Label: "Cafe", Pos: geo.Coord{Lat: 40.0000, Lon: -111.0006}},
		{ID: "taco-1", Label: "Taco", Pos: geo.Coord{Lat: 40.0450, Lon: -111.0000}},
		{ID: "taco-2", Label: "Taco", Pos: geo.Coord{Lat: 40.0455, Lon: -111.0000}},
		{ID: "bbq-1", Label: "BBQ", Pos: geo.Coord{Lat: 40.0450, Lon: -111.0006}},
	}

	clusters, err := cluster.Cluster(points, cluster.Options{RadiusKm: 1.0, MinGroupSize: 3})
	if err != nil {
		fmt.Println("cluster:", err)
		return
	}

	tour, err := plan.Optimize(clusters, plan.DefaultOptions())
	if err != nil {
		fmt.Println("plan:", err)
		return
	}

	report := plan.Validate(tour, 2*time.Hour, 3)

	fmt.Println("groups:", len(tour.Routes))
	fmt.Println("sequence:", tour.Sequence)
	fmt.Println("points:", tour.TotalPoints)
	fmt.Println("feasible:", report.Feasible())
	// Output:
	// groups: 2
	// sequence: [0 1]
	// points: 6
	// feasible: true
}
