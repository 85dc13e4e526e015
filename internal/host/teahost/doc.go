// Package teahost adapts Bubble Tea programs to the drag pipeline.
// Mouse messages become start/move/stop phases, and bubblezone marks
// provide live element geometry for hit testing and bounds resolution.
package teahost
