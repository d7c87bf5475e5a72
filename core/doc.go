// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - shared state machines used across screens (for example picker logic)
// - backdrop routing for the popup on top of the screen stack
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - page content and low-level widget rendering primitives
package core
