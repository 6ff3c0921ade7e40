package models

// Disease is a named condition linked to its symptoms through the
// disease_symptoms join table.
type Disease struct {
	ID          uint         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string       `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string       `json:"description" gorm:"type:text"`
	Symptoms    []Symptom    `json:"symptoms" gorm:"many2many:disease_symptoms;constraint:OnDelete:CASCADE"`
	Precautions []Precaution `json:"precautions" gorm:"foreignKey:DiseaseID;constraint:OnDelete:CASCADE"`
}

// Precaution is one free-text precaution line for a disease.
type Precaution struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	DiseaseID uint   `json:"disease_id" gorm:"index;not null"`
	Text      string `json:"text" gorm:"type:text;not null"`
}
