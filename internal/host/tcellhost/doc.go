// Package tcellhost adapts a tcell terminal to the drag pipeline: it
// derives start/move/stop phases from primary-button transitions in the
// mouse event stream, models terminal rectangles as drag nodes, and
// routes gestures to the draggable under the pointer.
package tcellhost
