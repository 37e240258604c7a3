// Package drivesel selects which motor and gear-ratio pair should drive
// each link of a three-segment robotic limb — provably cost-optimal,
// with full enumeration of every selection tied at the optimum.
//
// 🚀 What is drivesel?
//
//	A small, deterministic design-space search library that brings together:
//		• Catalog records: motors, gear-ratio sets, limb kinematics
//		• Feature matrix: every (motor, ratio) combination as one column
//		• Constraint formulation: per-link stall-torque and free-speed demands
//		• Exact selection: minimum total price over a mixed-integer oracle
//		• Frontier enumeration: every alternative tied at the optimal price
//		• Secondary refinement: maximum total gear reduction among the ties
//		• Evolutionary search: an independent feasibility-ranked GA strategy
//
// ✨ Why choose drivesel?
//
//   - Provable optimality – the oracle proves the optimum, ties included
//   - Deterministic – stable column ordering, seeded RNG, named tolerances
//   - Explicit sessions – no global solver state, single-owner explorations
//   - Pluggable oracles – lp_solve backend or the exact in-memory reference
//
// Everything is organized under flat subpackages:
//
//	catalog/       — Motor, Limb and ratio-set records + JSON loading
//	features/      — feature-matrix builder and selection decoder
//	solve/         — the optimization-oracle contract + exact reference
//	solve/lpsolve/ — lp_solve (MILP) oracle backend via golp
//	selector/      — formulation, primary solve, tie enumeration, refinement
//	evolve/        — feasibility-ranked genetic search over the same model
//	cmd/drivesel/  — CLI: load catalogs, select, enumerate, refine, evolve
//
// Quick sketch of the model, one slot per link:
//
//	link 1 ──► link 2 ──► link 3 ──► tip (force F, velocity v)
//	 slot₁      slot₂      slot₃     each slot picks exactly one column
//
// Dive into selector's package docs for the constraint derivation and the
// no-good-cut enumeration loop.
//
//	go get github.com/katalvlaran/drivesel
package drivesel
