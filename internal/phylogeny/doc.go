// Package phylogeny decides whether a binary taxon-by-character matrix
// admits a perfect phylogeny and, when it does, synthesizes the tree.
//
// The pipeline runs in four stages over a single, fixed character order:
//
//  1. OrderCharacters sorts columns by descending frequency (ties by index).
//  2. IsLaminar checks that every character is always reached from the same
//     preceding character, i.e. the character sets are nested or disjoint.
//  3. The builder walks each taxon from the root, reusing or creating one
//     edge per present character, and attaches the taxon where it stops.
//  4. Normalization splits multi-taxon labels into leaves and splices out
//     unlabeled pass-through nodes, merging their edge labels into chains.
//
// Analyze runs the whole pipeline and returns an immutable Result.
// Diagnostics are delivered to an optional Tracer instead of being printed.
package phylogeny
