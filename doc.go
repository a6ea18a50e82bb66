// Package tourgeo builds approximate travelling-salesman tours over points
// in the plane with the greedy nearest-insertion heuristic.
//
// What is tourgeo?
//
//	A small deterministic library plus a CLI:
//		• geometry/  — Point, Euclidean distance, point-to-segment distance
//		• pointset/  — immutable keyed point sets and the "<id> <x> <y>" parser
//		• tsp/       — nearest-insertion tour builder, cost evaluator,
//		               tour utilities, observers and a brute-force reference
//		• cmd/tourbuild — parse a file, solve, report cost/time/steps
//
// How the heuristic works:
//
//	Seed a two-edge cycle between a start node and its nearest neighbour.
//	Then, until every node is placed, find the (edge, node) pair with the
//	smallest point-to-segment distance and split that edge through the node.
//
// Complexity: O(n³) time, O(n) memory.
//
//	go get github.com/katalvlaran/tourgeo
package tourgeo
