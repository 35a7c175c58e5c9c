package panel

// Package panel holds the host application's panels in registration order
// together with their persisted placement, and reconciles that placement
// against the panel set on every start.
