/*
Package trie provides a letter trie for word games. Words are inserted as
sequences of units (runes by default, or strings when one tile or die face
carries several letters), the trie is annotated with the best score reachable
below every node, and a Searcher walks the trie with a rack of tiles or a
board of dice, skipping every branch that cannot beat the best word found so
far.

A trie is built first, then annotated, then searched. Reads may run
concurrently; an insertion after annotation makes the annotation stale and
searching with it panics until Annotate is called again.
*/
package trie
