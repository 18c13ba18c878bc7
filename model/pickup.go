package model

// PickupStatusPayload changes the only mutable field of a pickup request.
type PickupStatusPayload struct {
	Status string `json:"status" binding:"required,oneof=pending completed"`
}
