/*
Package seqs provides lazy, composable operators over pull-based sequences
([pull.Seq]).

Every operator is a free function taking the source sequence as its first
argument. Lazy operators ([Map], [FilterMap], [FlatMap], [Take], [Drop],
[Cycle], [Zip], ...) return a new sequence and pull nothing from their source
until the result itself is pulled. Terminal operators ([Collect], [Fold],
[Reduce], [Find], [FindMap], [ForEach], [Sum], ...) drive the chain to
completion and return a resolved value.

# Suspension

A source may block inside Next waiting on an external event, and every
per-element callback receives a context and may block as well. Operators
await each callback before moving to the next element; the one exception is
[Zip], which issues its two per-step pulls concurrently so that independent
wait latencies overlap.

# Filtering

Filtering callbacks return an optional.Value: an empty optional drops the
element, a present one carries the (possibly transformed) replacement. This
keeps every element value legal, including zero values and nils.

Note that [Find] is the predicate form of the fluent surface's Filter: it is
a terminal search for the first satisfying element, not a sequence filter.
Sequence-producing filtering is [FilterMap].

# Errors

An error returned by a source or a callback aborts the terminal call that is
driving consumption and propagates unchanged. Lazy operators never fail at
construction time.
*/
package seqs
