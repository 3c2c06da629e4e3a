package overlay

// errors.go intentionally declares no sentinel errors.
//
// Per the engine's error taxonomy, the overlay kernel never reports
// errors: a dead branch is signaled by a (nil, false) return, never by an
// error value. Sentinel errors belong to the packages whose mutations can
// violate an invariant (suptop) or whose top-level entry point can fail
// on malformed input (orchestrator).
