// Package destructure drives the recursive destructuring walk that turns
// a typesource.ProcessState's typed blocks into hypotheses and factors
// in a fgbuilder.Builder. It seeds from every top-level typed block,
// recurses through arrays, records, and pointers, and relies on the
// builder's deduplication to terminate even on cyclic pointer graphs.
//
// Failures from the external collaborators (a bad type cast, a missing
// field, a dangling pointer) are swallowed: the walk simply omits the
// unresolvable sub-tree and counts it in Stats.SubtreesSkipped. Run
// itself only fails when the process state exposes no typed-block layer
// at all, or when a seed block's type id is unknown to the repository.
package destructure
