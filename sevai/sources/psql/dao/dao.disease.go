package dao

import (
	"context"

	"sevai/sevai/sources/psql/models"

	"gorm.io/gorm"
)

type DiseaseDAO struct {
	DB *gorm.DB
}

func NewDiseaseDAO(db *gorm.DB) *DiseaseDAO {
	return &DiseaseDAO{DB: db}
}

// GetAll returns all diseases with their symptoms and precautions preloaded.
func (dao *DiseaseDAO) GetAll(ctx context.Context) ([]models.Disease, error) {
	var diseases []models.Disease
	err := dao.DB.WithContext(ctx).
		Preload("Symptoms").
		Preload("Precautions").
		Find(&diseases).Error
	if err != nil {
		return nil, err
	}
	return diseases, nil
}

func (dao *DiseaseDAO) GetByName(ctx context.Context, name string) (*models.Disease, error) {
	var disease models.Disease
	err := dao.DB.WithContext(ctx).
		Preload("Symptoms").
		Preload("Precautions").
		Where("lower(name) = lower(?)", name).
		First(&disease).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &disease, nil
}

// Upsert creates the disease if absent and returns it either way.
func (dao *DiseaseDAO) Upsert(ctx context.Context, name string) (*models.Disease, error) {
	existing, err := dao.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	disease := models.Disease{Name: name}
	if err := dao.DB.WithContext(ctx).Create(&disease).Error; err != nil {
		return nil, err
	}
	return &disease, nil
}

// SetDescriptionIfEmpty fills in the description only when none is stored.
func (dao *DiseaseDAO) SetDescriptionIfEmpty(ctx context.Context, disease *models.Disease, description string) error {
	if disease.Description != "" || description == "" {
		return nil
	}
	disease.Description = description
	return dao.DB.WithContext(ctx).Save(disease).Error
}

// AddPrecaution appends a precaution line unless the disease already has it.
func (dao *DiseaseDAO) AddPrecaution(ctx context.Context, disease *models.Disease, text string) error {
	if text == "" {
		return nil
	}
	for _, p := range disease.Precautions {
		if p.Text == text {
			return nil
		}
	}
	precaution := models.Precaution{DiseaseID: disease.ID, Text: text}
	if err := dao.DB.WithContext(ctx).Create(&precaution).Error; err != nil {
		return err
	}
	disease.Precautions = append(disease.Precautions, precaution)
	return nil
}

// AssociateSymptom links a symptom to the disease unless already linked.
func (dao *DiseaseDAO) AssociateSymptom(ctx context.Context, disease *models.Disease, symptom *models.Symptom) error {
	for _, s := range disease.Symptoms {
		if s.ID == symptom.ID {
			return nil
		}
	}
	err := dao.DB.WithContext(ctx).Model(disease).Association("Symptoms").Append(symptom)
	if err != nil {
		return err
	}
	return nil
}
