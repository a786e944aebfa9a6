// Package munchroute plans a walking tour that visits the maximum number of
// distinct fast-food locations within a fixed time budget.
//
// 🚀 What is munchroute?
//
//	A deterministic, computation-only route optimization engine. Given a set
//	of geolocated points - each with a permanent unique identifier - it:
//		• groups them into walkable clusters (density-based, noise-aware)
//		• orders the points inside each cluster (a family of TSP strategies)
//		• orders the clusters themselves and stitches one end-to-end route
//		• scores the result and checks feasibility against a time budget
//
// ✨ Why choose munchroute?
//
//   - Identity-safe – points sharing a display label but not an ID are
//     independent, non-mergeable visit targets; nothing is ever coalesced
//   - Deterministic – same input, same parameters, same route; no RNG
//   - Pure computation – no API calls, no persistence, no rendering;
//     upstream collectors and downstream exporters stay outside the boundary
//
// Everything is organized under five subpackages plus configuration:
//
//	geo/     — haversine distances, distance matrices, centroids
//	cluster/ — density-based spatial clustering with noise separation
//	tsp/     — interchangeable tour solvers (greedy, 2-opt, exact, auto)
//	route/   — per-cluster visiting order with quality metrics
//	plan/    — global sequencing, alternatives, feasibility validation
//	config/  — YAML-backed engine parameters for the surrounding layers
//
// Data flows one direction: points → clusters → per-cluster routes → global
// route. No package mutates a collaborator's output; every operation returns
// new immutable structures.
package munchroute
