// Package dijkstra computes single-source shortest paths over undirected
// weighted edge lists with non-negative weights.
//
// [Run] performs the classic relaxation loop with a lazy-deletion min-heap:
// instead of decrease-key, improved distances push duplicate heap entries and
// stale pops are discarded by comparing against the best recorded distance.
// The result carries a distance for every node in the graph (+Inf when
// unreachable) and a predecessor map from which [Result.PathTo] reconstructs
// complete paths.
//
// Weights are assumed non-negative; the package does not validate this and
// negative weights silently break the shortest-path guarantee, matching the
// documented input contract.
package dijkstra
