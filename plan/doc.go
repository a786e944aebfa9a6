// Package plan assembles per-group routes into one global walking tour.
//
// What you get:
//
//	🚀 Optimize     – full pipeline: intra-group routes, centroid-level
//	                  sequencing, anchor handling, totals and duration.
//	🚀 Alternatives – several distinct tours over the same groups, varied
//	                  by solver strategy and then by starting group.
//	✨ Validate      – feasibility report: hard failures vs. soft warnings.
//	✨ Flatten       – the tour as one flat visiting order across groups.
//
// Sequencing model: each non-noise group is reduced to its centroid, and a
// tour solver orders the centroids (a macro instance, tiny next to the
// per-group ones). Optional start/end anchors participate in that macro
// instance as pinned endpoints, so the anchor legs are optimized together
// with the inter-group legs rather than bolted on afterwards.
//
// Totals: centroids decide the sequence only. The walked length is measured
// over the legs actually walked - the flattened tour point by point, plus
// any anchor legs - so without anchors the length of Flatten() and TotalKm
// agree exactly. Duration combines a fixed dwell per visited point with the
// walked length at a constant speed.
//
// Noise points never appear in a tour: the clusterer rejected them and the
// sequencer honors that.
//
// Determinism: for fixed groups and fixed Options, Optimize returns the
// identical tour on every call. Alternatives returns distinct tours only -
// it never pads the result with copies.
package plan
