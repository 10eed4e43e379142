// Package matrix provides the dense int32 matrix type shared by all
// transpose kernels and by the evaluation harness.
//
// What:
//
//   - Matrix wraps a flat row-major []int32 with logical shape (rows, cols);
//     element (i, j) lives at byte offset 4·(i·cols + j) from the buffer base.
//   - Constructors (New, FromRows, Generate) validate shape up front and
//     return sentinel errors; the hot-path accessors At/Set are unchecked
//     trusted paths, matching the kernels' "inputs are trusted" contract.
//   - An optional Probe observes the byte offset of every element access,
//     which is how the harness replays a kernel against a cache simulator
//     without touching the kernel code.
//
// Why:
//
//   - Cache behavior is a property of addresses, not values; a flat slice
//     plus a virtual base address reproduces the layout the kernels are
//     tuned for.
//   - Keeping instrumentation behind a nil-checked hook leaves the
//     un-probed path allocation-free and branch-cheap.
//
// Complexity:
//
//   - At/Set/Rows/Cols: O(1).
//   - Clone/Equal/String: O(rows·cols).
//
// Errors:
//
//   - ErrInvalidDimensions: requested dimensions are non-positive.
//   - ErrEmptyMatrix: FromRows received no rows or no columns.
//   - ErrNonRectangular: FromRows received rows of differing lengths.
//   - ErrNilFill: Generate received a nil fill function.
package matrix
