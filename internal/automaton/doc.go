// Package automaton runs outer-totalistic cellular automata to a fixed point or
// for a fixed number of generations.
//
// A Space is one immutable snapshot of cell states together with the
// neighbourhood that relates its cells. Run repeatedly derives successor
// snapshots from it under a Rule, which says how many active neighbours make
// an inactive cell active (Birth) and keep an active cell active (Survive).
//
// Two spaces are provided:
//
//   - Seating: a bounded character grid of floor, empty and occupied seats,
//     counting neighbours either among the eight adjacent cells or along the
//     eight lines of sight.
//   - Lattice: an unbounded sparse lattice of 2 to 4 axes using the Moore
//     neighbourhood, storing active cells only.
package automaton
