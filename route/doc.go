// Package route turns one walkable group of points into an ordered
// visiting route with quality metrics.
//
// What you get:
//
//	🚀 Optimize      – solve a single group into a Route (order + metrics).
//	🚀 OptimizeAll   – fan a whole partition out across goroutines and get
//	                   back per-cluster routes, noise skipped.
//	✨ Metrics        – total km, leg count, average leg, efficiency score.
//	✨ Validate       – loud duplicate-visit detection on a finished route.
//	✨ CompareStrategies – run every applicable solver on the same group.
//
// The efficiency score compares the straight-line distance between the
// route's first and last points against the walked length: a route that
// goes straight scores near 1.0, a route that zigzags scores low. Routes
// of one point (or of zero length) score a perfect 1.0 by definition, and
// the score is capped at 1.0 so numerical jitter cannot exceed it.
//
// Points carry opaque IDs: two points with the same display label but
// different IDs are distinct visits and both appear in the route.
//
// Determinism: for a fixed group and fixed Options, Optimize returns the
// identical Route on every call, and OptimizeAll returns results identical
// to solving each cluster serially - parallelism never changes the answer.
package route
