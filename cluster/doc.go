// Package cluster groups visit targets into walkable clusters using
// density-based spatial clustering (DBSCAN) over a great-circle distance
// matrix, without requiring the caller to pre-specify the number of groups.
//
// Points too isolated to belong to any dense region are assigned to the
// Noise group (id -1) - separated, never dropped: the partition invariant
// guarantees every input point lands in exactly one group, noise included.
//
// Two points sharing a display label but not an identifier are clustered as
// what they are: two independent targets. Identity plays no role in density
// reachability; only positions do.
//
// Determinism: cluster membership is a function of (radius, minGroupSize)
// and the input set alone - expansion order cannot change the partition,
// only which numeric id a group receives. Ids are assigned in input order of
// the first core point of each group, so a fixed input order yields stable
// ids too.
//
// Beyond the partition itself the package offers per-cluster quality metrics
// (size, cohesion, diameter, centroid), threshold validation and a
// silhouette-scored grid search over the two parameters.
package cluster
