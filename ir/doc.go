// Package ir contains the in memory form of a device tree source document:
// a tree of [Node] values holding ordered [Property] values.
//
// A parsed document is held by a synthetic root node named [RootName] whose
// children are the top level nodes of the source. The root is never written
// out by the generator; only its properties and children are.
package ir
