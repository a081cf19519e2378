package engine

// Backend defines where per-pixel fractal evaluation happens: on the CPU
// worker pool or on the GPU via the fragment shader host.
type Backend int

const (
	BackendCPU Backend = iota
	BackendGPU
)

var currentBackend = BackendCPU

// SetBackend selects the active render backend.
// If an unknown value is passed, the CPU backend is used.
func SetBackend(b Backend) {
	switch b {
	case BackendCPU, BackendGPU:
		currentBackend = b
	default:
		currentBackend = BackendCPU
	}
}

// GetBackend returns the currently selected render backend.
func GetBackend() Backend {
	return currentBackend
}
