// Package iterable provides lazy combinators over sequences.
//
// The synchronous combinators wrap iter.Seq values and pull from their source
// only when the consumer asks for the next element. The Async variants are
// channel stages: each runs one goroutine that forwards elements from its
// source until the source is closed, the stage has produced everything it
// should, or the context is cancelled. A slow consumer suspends the whole
// pipeline, since every send blocks until it is received.
//
// A nil source is an empty sequence, and a nil condition lets every element
// through.
package iterable
