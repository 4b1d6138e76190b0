// Package navtree models documentation sidebars as immutable trees of document
// references and collapsible categories.
//
// A sidebar is described declaratively (see Item and Description) and turned
// into a Tree by a Builder. Building is a single synchronous pass: the whole
// description is valid, or Build returns the first structural error found,
// annotated with the node path (for example docs[1].items[0]).
//
// Document references are only checked for shape while building. Whether a
// reference names an existing document is answered separately by Verify with
// a Resolver supplied by the caller.
package navtree
