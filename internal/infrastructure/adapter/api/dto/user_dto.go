package dto

// UserSavedResponse confirms a user account upsert
type UserSavedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
