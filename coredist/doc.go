// Package coredist computes per-point core distances — the distance from
// each point to its m-th nearest neighbor (m = min_samples, counting the
// point itself as rank 0) — and seeds the easy candidate edges that follow
// directly from them, ahead of the first dual-tree sweep.
//
// For N > 16384 and a configured worker count > 1, the kNN pass is split
// into equal contiguous chunks of point ids and queried in parallel
// goroutines that each write into disjoint slices of the shared output
// matrices; the pass joins before Initialize returns, exactly as spec'd —
// this is the only parallel region in the whole engine. The join-before-
// return, disjoint-output-slice shape mirrors the
// core.Graph concurrency tests' fan-out-then-wg.Wait idiom, adapted here
// to a pure function instead of a shared mutable graph.
package coredist
