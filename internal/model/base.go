package model

// Reference identifies an already persisted record by its numeric id
type Reference struct {
	ID int64 `json:"id" db:"id"`
}
