// Package widgets holds stateless render primitives: boxes, lists, stacks,
// grids and the popup compositor with its hit rectangle. Nothing here reads
// keys or owns page state.
package widgets
