package model

// CollectorPayload is the creation form for a collector. The UID doubles as
// the document id, so creation is an upsert keyed by whatever the operator
// typed in.
type CollectorPayload struct {
	UID      string `json:"uid" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	District string `json:"district" binding:"required"`
}

func (p CollectorPayload) Fields() map[string]interface{} {
	return map[string]interface{}{
		"uid":      p.UID,
		"name":     p.Name,
		"email":    p.Email,
		"phone":    p.Phone,
		"district": p.District,
	}
}
