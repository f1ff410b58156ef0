// Package input adds keyboard, pointer and focus input on top of routed
// events.
//
// InputElement declares the input events and keeps its state properties
// (IsFocused, IsPointerOver, IsEnabledCore) current through class handlers.
// FocusManager moves keyboard focus below a focus scope, HitTest finds the
// element under a point, and Pointer turns pointer positions into the
// enter, leave, move, press, release and wheel events.
package input
