// Package crucible computes minimum-cost routes across digit grids for a
// mover whose steering depends on its recent history.
//
// 🚀 What is crucible?
//
//	A small, dependency-light toolkit that brings together:
//		• gridcost: rectangular non-negative cost grids, parsed from text
//		• astar:    A* over (cell, heading, run length) states with
//		            pluggable minimum/maximum run policies
//		• cmd/crucible: a CLI that solves a grid under several policies
//
// The mover starts in the top-left cell and must reach the bottom-right
// one. Entering a cell costs that cell's digit; the start cell is free.
// The mover can never reverse, and each policy bounds how long it must
// and may keep going straight:
//
//	standard  min 1, max 3
//	extended  min 4, max 10 (also the minimum before stopping at the goal)
//
// Quick start:
//
//	g, _ := gridcost.ParseString(input)
//	res, _ := astar.Search(g, astar.Standard())
//	if res.Reachable() {
//		fmt.Println(res.Cost)
//	}
//
// Several policies can be evaluated concurrently with astar.SolveAll.
package crucible
