// Package libdiff computes line diffs between two versions of a document,
// used to review table and property edits before they are written.
package libdiff
