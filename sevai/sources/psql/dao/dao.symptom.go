package dao

import (
	"context"

	"sevai/sevai/sources/psql/models"

	"gorm.io/gorm"
)

type SymptomDAO struct {
	DB *gorm.DB
}

func NewSymptomDAO(db *gorm.DB) *SymptomDAO {
	return &SymptomDAO{DB: db}
}

func (dao *SymptomDAO) GetAll(ctx context.Context) ([]models.Symptom, error) {
	var symptoms []models.Symptom
	err := dao.DB.WithContext(ctx).Find(&symptoms).Error
	if err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (dao *SymptomDAO) GetByName(ctx context.Context, name string) (*models.Symptom, error) {
	var symptom models.Symptom
	err := dao.DB.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&symptom).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &symptom, nil
}

// Upsert creates the symptom if it does not exist. An existing record is
// left untouched except that a zero weight is filled in; the loader contract
// is fill-missing, never overwrite.
func (dao *SymptomDAO) Upsert(ctx context.Context, name string, weight int) (*models.Symptom, error) {
	existing, err := dao.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		symptom := models.Symptom{Name: name, Weight: weight}
		if err := dao.DB.WithContext(ctx).Create(&symptom).Error; err != nil {
			return nil, err
		}
		return &symptom, nil
	}
	if existing.Weight == 0 && weight != 0 {
		existing.Weight = weight
		if err := dao.DB.WithContext(ctx).Save(existing).Error; err != nil {
			return nil, err
		}
	}
	return existing, nil
}
