package model

// ClarifyPayload changes the only mutable field of an incentive award.
type ClarifyPayload struct {
	IsClarified *bool `json:"isClarified" binding:"required"`
}
