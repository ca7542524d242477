// Package simple provides one concrete, in-memory adjacency-list graph
// storage implementing every capability declared in package graph. It
// plays the role of an "external storage back-end" (spec §6): the core
// algorithm packages never import it directly, they only require the
// graph capabilities it happens to satisfy.
//
// Graph is adapted from the teacher's core.Graph (mutex-protected
// adjacency-list storage, functional GraphOption construction, sentinel
// errors) generalized from string vertex IDs to the dense graph.NodeID
// scheme used throughout this module.
package simple
