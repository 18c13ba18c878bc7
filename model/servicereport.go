package model

// ResolvePayload changes the only mutable field of a service report.
// Pointer so that an explicit false still binds.
type ResolvePayload struct {
	IsResolved *bool `json:"isResolved" binding:"required"`
}
