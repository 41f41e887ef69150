// Package engine decodes ygopro-core duel messages into legal actions.
//
// The duel engine itself is external and opaque; this package only reads its
// binary messages, translates card positions to and from the compact spec
// notation ("h3", "om2a"), expands zone masks into placements, validates
// opcode streams and solves the small subset-sum problems that selection
// prompts imply. Everything here is pure: no logging, no I/O beyond deck
// lists, no shared mutable state.
package engine
