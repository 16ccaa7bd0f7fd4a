/*
Package lazy provides a pull-based lazy sequence engine for processing
unbounded or expensive-to-materialize streams of values in a single pass,
without intermediate buffers.

The unit of currency is [Seq], an immutable handle over a suspension cell: a
zero-argument computation that, when invoked, yields the next element together
with a cell for the remainder, or reports exhaustion. Producers build a Seq
from a seed ([Unfold], [Range], [Iterate], ...), combinators wrap a Seq in a
new Seq without performing any work ([Map], [Filter], [Zip], [ChunkBy], ...),
and consumers drive the chain to a concrete result ([Reduce], [Collect],
[Find], [GroupBy], ...).

	evens := lazy.Filter(lazy.Range(0, 100), func(n int) bool { return n%2 == 0 })
	total := lazy.Reduce(evens, 0, func(acc, n int) int { return acc + n })

# Laziness

Constructing a pipeline performs no element production. Work happens only when
a consumer runs (or when [Seq.Next] is called), and elements are pulled one at
a time end to end: no combinator forces more than one upstream element per
element requested downstream, except where the operation inherently needs
lookahead ([Chunk] and [ChunkBy] buffer up to a group boundary, [Zip] pulls
one element from each side per output pair).

# Infinite sequences

[Repeat], [RepeatFunc], [Iterate] and [Cycle] never terminate. Draining
consumers — [Reduce], [Collect], [Count], [Drain], [ForEach], [GroupBy],
[ToList], and [Any]/[All] with a predicate that never settles the answer —
will not return when given one. Use a short-circuiting consumer
([ReduceWhile], [TryReduce], [Find], [First]) or bound the sequence with
[Take] or [TakeWhile] first.

# Replay

Handles are immutable and cells are pure values, so a Seq may be driven any
number of times, by any number of independent consumers, and each traversal
observes the same elements. This guarantee is forfeited when a caller supplies
an impure function (for example a closure over mutable state passed to
[RepeatFunc] or [Map]); such sequences should be traversed once.
*/
package lazy
