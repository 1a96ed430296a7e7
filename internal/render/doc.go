// Package render provides low-level drawing primitives for the dashboard.
// The GUI implementation requires the ebiten build tag.
package render
