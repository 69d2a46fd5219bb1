// This package provides functions and data structures for iterating over
// divisible ranges, either sequentially or through a pluggable parallel
// execution backend.
//
// It provides the following subpackages:
//
// rangepar/parfor provides the entry points ForEach and Reduce, which decide
// per call whether a range is processed sequentially on the calling
// goroutine or handed to the configured backend.
//
// rangepar/ranges provides the range and cursor capability interfaces,
// together with divisible ranges over integers, slices, zipped slice pairs,
// and enumerated slices.
//
// rangepar/element adapts user operators to the shape of range elements:
// plain scalars, pairs and triples unpacked into separate arguments, and
// nested handles unwrapped to arbitrary depth.
//
// rangepar/backend provides the execution backends: sequential-only,
// fork-join binary splitting, and a bounded goroutine pool.
//
// rangepar/tuple provides the pair and triple element types.
//
// rangepar/gsync provides synchronization abstractions.
package rangepar
