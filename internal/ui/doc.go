// Package ui is the composition and event-routing core of the terminal UI.
//
// Core abstractions:
//   - Component / EventComponent: drawable, focusable units with one owner
//   - Dispatcher: maps classified input events to per-component callbacks
//   - Group / FocusManager: containers that forward focus and rotate it
//   - Layer / LayerStack: z-ordered surfaces with modal input blocking
//   - Bus: FIFO of deferred stack changes raised from inside handlers
//   - Driver: the draw, input, drain, sweep cycle of one UI session
//   - Program: Bubble Tea adapter around a Driver
package ui
