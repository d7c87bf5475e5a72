// Package screens contains concrete overlay flows rendered on top of the page.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (detail modals, navigation drawer, command palette, history)
// - modal-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
