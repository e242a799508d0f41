// Package scheduler runs the periodic reminder tick loop. Every tick
// it re-reads due events from the store (no occurrence date is ever
// cached across ticks), dispatches a desktop notification for each, and
// advances the occurrence date of recurring events that were notified
// successfully.
//
// The loop is driven by an injected ticker so tests can fire ticks
// deterministically, and it stops only on context cancellation; an
// in-flight tick always runs to completion. Errors never escape a
// tick — they are logged with the failing event id and the loop keeps
// going.
package scheduler
