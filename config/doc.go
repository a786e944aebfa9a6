// Package config is the narrow YAML bridge between deployment configuration
// and the engine's option structs.
//
// The engine packages (cluster, tsp, route, plan) never read files: they
// take option structs. This package loads one YAML document, validates it
// and converts it into those structs via the *Options adapters. Durations
// are written in the usual Go notation ("3m", "1h30m").
//
// Example document:
//
//	cluster:
//	  radius_km: 0.5
//	  min_group_size: 3
//	solver:
//	  strategy: auto
//	  quality: balanced
//	  exact_max_nodes: 14
//	  time_limit: 5s
//	walk:
//	  dwell_per_visit: 3m
//	  speed_kmh: 5.0
//	tour:
//	  budget: 4h
//	  min_points: 5
package config
