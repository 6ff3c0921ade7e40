package models

// Symptom is a catalog-registered medical sign. Name is the case-insensitive
// matching key; Weight is the advisory severity from the reference dataset.
type Symptom struct {
	ID     uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Weight int    `json:"weight" gorm:"not null;default:0"`
}
