// Package coloring assigns graph-coloring colors via a wave-function-
// collapse style search: every node starts with a domain (bitset) of
// every color under consideration, the node with the smallest domain is
// repeatedly "collapsed" to its lowest remaining color, and that choice
// propagates by removing the color from every neighbor's domain. A
// domain collapsing to empty is a contradiction; the search reruns from
// scratch with one more candidate color rather than backtracking within
// a run, terminating no later than max-degree+1 colors by the standard
// greedy-coloring bound.
//
// Domains are backed by golang.org/x/tools/container/intsets, the same
// bitset package the teacher's visitmap and dag packages already use,
// sourced from gonum-gonum's graph/coloring for this exact concern.
package coloring
