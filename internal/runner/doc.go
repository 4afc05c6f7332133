// Package runner drives the fixed scenario list through the
// prompt -> invoke -> extract -> validate pipeline and prints one
// human-readable block per scenario.
//
// Invariants:
//   - scenarios run strictly sequentially, in list order, exactly once
//   - invocation and parse failures are recovered per scenario; the loop
//     always completes and the caller's exit code stays zero
package runner
