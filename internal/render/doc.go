// Package render presents analysis results: a text dump of variable ranges,
// a JSON document of the same data and a Graphviz rendering of the control
// flow graph.
package render
