package model

// InspectorPayload is the creation form for an inspector. The document id
// is assigned by the store.
type InspectorPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	District string `json:"district" binding:"required"`
}

func (p InspectorPayload) Fields() map[string]interface{} {
	return map[string]interface{}{
		"name":     p.Name,
		"email":    p.Email,
		"district": p.District,
	}
}
