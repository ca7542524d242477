// Package traverse implements BFS, DFS, DFS-postorder, and a topological
// walker over the graph capability interfaces (component D of the core
// specification). BFS is iterative over an explicit slice-backed queue.
// DFS is iterative over an explicit stack of per-node neighbor cursors
// (DFSWalker), kept as reusable scratch state: Reset starts a fresh walk
// reusing the visit map and stack, and MoveTo (re)seeds it at a node, letting one
// walker cover every component of a disconnected graph. TopologicalSort
// walks the same shape of explicit stack and can likewise reuse its
// scratch state across calls via a caller-supplied TopoWorkspace;
// GroupedTopologicalSort's in-degree map and frontier buffers are
// similarly reusable via an optional GroupedTopoWorkspace.
//
// Adapted from the teacher's bfs and dfs packages: the same functional
// Option/DefaultOptions shape, context.Context cancellation, and
// OnVisit/OnExit hook names survive, generalized from *core.Graph and
// string vertex IDs to graph.Neighbors/graph.NeighborsDirected and
// graph.NodeID.
package traverse
