//go:build !ebiten

package ui

// Dashboard is a no-op placeholder for headless builds.
type Dashboard struct{}

// NewDashboard returns nil in the headless build.
func NewDashboard(int, int) *Dashboard { return nil }

// Throttle reports zero in the headless build.
func (d *Dashboard) Throttle() float64 { return 0 }

// SetThrottle is a no-op in the headless build.
func (d *Dashboard) SetThrottle(float64) {}

// Update is a no-op in the headless build.
func (d *Dashboard) Update() bool { return false }

// Draw is a no-op placeholder.
func (d *Dashboard) Draw(any, any, int) {}
