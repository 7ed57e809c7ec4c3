// Package digraphx is an engine for negative-cycle detection and
// parametric network optimization on weighted directed graphs, built
// around Howard's policy-iteration method.
//
// 🚀 What is digraphx?
//
//	A small, layered library that brings together:
//		• Graph views: read-only node→neighbor→edge iteration over any backing store
//		• Negative-cycle detection: Howard's policy iteration, no source node needed
//		• Constrained detection: gated relaxations, predecessor & successor modes
//		• Parametric solvers: "largest feasible r" maximization and its constrained dual
//		• Minimum cycle ratio: cost/time cycle analysis for circuit timing & scheduling
//
// ✨ Why choose digraphx?
//
//   - Warm-started – distance maps persist across outer iterations, so the
//     parametric loop is amortized instead of restarting from scratch
//   - Lazy – cycles are enumerated as pull-based iter.Seq sequences;
//     abandon them at any point without leaking state
//   - Generic – opaque node, edge and numeric domain types; the core never
//     inspects edge payloads except through caller-supplied functions
//   - Read-only – a graph view is borrowed, never mutated, and may be shared
//     by any number of concurrent detectors
//
// Everything is organized under four subpackages, data flowing strictly upward:
//
//	digraph/    — the Digraph view interface + map- and slice-backed adapters
//	negcycle/   — FindNegCycles, ScanPred, ScanSucc (the detection layer)
//	parametric/ — Maximize and Minimize (feasibility-threshold search)
//	ratio/      — MinCycleRatio (cost/time specialization of Maximize)
//
// Quick ASCII example:
//
//	    a0 ──1──▶ a1
//	     ▲         │
//	      ╲       1│
//	    -4 ╲      ▼
//	        ╲── a2
//
//	a 3-cycle with total weight −2: FindNegCycles reports it once.
//
// Dive into the per-package docs for the algorithm outlines, complexity
// notes and worked examples.
//
//	go get github.com/katalvlaran/digraphx
package digraphx
