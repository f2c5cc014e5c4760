// SPDX-License-Identifier: MIT

// Package core defines the causal graph: a fixed pool of variable slots and
// the directed cause → effect edges between them.
//
// What:
//
//   - Variables live in Capacity slots addressed by the ids "a".."z". A new
//     variable takes the smallest free id.
//   - Each Variable owns its noise model and its mechanism; its causes and
//     effects lists are relations only and always mirror the graph's edges.
//   - The edge relation is acyclic before and after every mutation. A
//     candidate edge is tested on a read-only overlay (dfs.WithEdge) and
//     committed only if no cycle appears; rejected mutations change nothing.
//
// Errors:
//
//	ErrCapacityExceeded   every slot is occupied.
//	ErrVariableNotFound   id is outside the pool or its slot is empty.
//	ErrSlotTaken          InsertVariable on an occupied slot.
//	ErrEdgeNotFound       RemoveEdge on an absent edge.
//	ErrEdgeExists         AddEdge on an existing edge.
//	ErrWouldCreateCycle   AddEdge that would close a cycle (self-loops included).
//	ErrInvalidName        display name shorter than 2 or not starting with a letter.
//	ErrDuplicateName      display name already used by another variable.
//
// Concurrency:
//
//	Graph holds no locks. The owning scm.Model serializes all access.
package core
