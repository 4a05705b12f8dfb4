// Package collation provides the locale-aware string comparison used for
// title ordering everywhere in shelfsearch. A single comparator keeps the
// catalog reader's sort, the index tie-break, and test assertions agreed
// on one ordering.
package collation
