// Package resize watches a carousel's container and slides for size changes
// and asks the carousel to re-measure itself when one is genuine.
//
// A [Handler] registers with an [Observer], which reports batches of
// [Entry] values for nodes whose geometry changed. With the default policy
// the handler re-measures each reported node along the carousel axis and,
// on the first size that differs from the recorded baseline, calls
// ReInit once and emits "resize". A custom policy hands the raw batch to a
// user callback instead.
//
// Observers may deliver from their own goroutines and may still deliver
// after Destroy. The handler drops every batch that arrives once it has
// been destroyed. Wrap an observer in a [Queue] to move delivery onto the
// goroutine that calls [Queue.Flush], usually the frame loop.
package resize
