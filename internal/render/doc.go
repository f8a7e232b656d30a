// Package render serializes phylogeny trees and results for output:
// Graphviz DOT for drawing, JSON and YAML for machine consumption.
package render
