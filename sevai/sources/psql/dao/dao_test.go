package dao

import (
	"context"
	"testing"

	"sevai/sevai/sources/psql/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestEnv(t *testing.T) (*SymptomDAO, *DiseaseDAO) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Symptom{}, &models.Disease{}, &models.Precaution{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSymptomDAO(db), NewDiseaseDAO(db)
}

func TestSymptomUpsert(t *testing.T) {
	symptoms, _ := setupTestEnv(t)
	ctx := context.Background()

	created, err := symptoms.Upsert(ctx, "fever", 3)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created.ID == 0 || created.Weight != 3 {
		t.Errorf("created = %+v", created)
	}

	// A second upsert must not overwrite the stored weight.
	again, err := symptoms.Upsert(ctx, "fever", 9)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if again.ID != created.ID || again.Weight != 3 {
		t.Errorf("re-upsert = %+v, want same row with weight 3", again)
	}

	// But a zero weight gets filled in.
	if _, err := symptoms.Upsert(ctx, "cough", 0); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	filled, err := symptoms.Upsert(ctx, "cough", 2)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if filled.Weight != 2 {
		t.Errorf("zero weight not filled: %+v", filled)
	}
}

func TestSymptomGetByNameCaseInsensitive(t *testing.T) {
	symptoms, _ := setupTestEnv(t)
	ctx := context.Background()

	if _, err := symptoms.Upsert(ctx, "Chest Pain", 7); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	got, err := symptoms.GetByName(ctx, "chest pain")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if got == nil || got.Name != "Chest Pain" {
		t.Errorf("GetByName = %+v", got)
	}

	missing, err := symptoms.GetByName(ctx, "rash")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing symptom, got %+v", missing)
	}
}

func TestDiseaseUpsertAndAssociations(t *testing.T) {
	symptoms, diseases := setupTestEnv(t)
	ctx := context.Background()

	flu, err := diseases.Upsert(ctx, "Flu")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if same, _ := diseases.Upsert(ctx, "flu"); same.ID != flu.ID {
		t.Errorf("case-insensitive upsert created a duplicate: %d vs %d", same.ID, flu.ID)
	}

	if err := diseases.SetDescriptionIfEmpty(ctx, flu, "A viral infection."); err != nil {
		t.Fatalf("SetDescriptionIfEmpty: %v", err)
	}
	if err := diseases.SetDescriptionIfEmpty(ctx, flu, "overwrite attempt"); err != nil {
		t.Fatalf("SetDescriptionIfEmpty: %v", err)
	}
	if flu.Description != "A viral infection." {
		t.Errorf("description = %q", flu.Description)
	}

	for _, text := range []string{"rest", "rest", "drink fluids"} {
		if err := diseases.AddPrecaution(ctx, flu, text); err != nil {
			t.Fatalf("AddPrecaution: %v", err)
		}
	}
	if len(flu.Precautions) != 2 {
		t.Errorf("precautions = %d, want 2 (deduplicated)", len(flu.Precautions))
	}

	fever, err := symptoms.Upsert(ctx, "fever", 3)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := diseases.AssociateSymptom(ctx, flu, fever); err != nil {
		t.Fatalf("AssociateSymptom: %v", err)
	}
	if err := diseases.AssociateSymptom(ctx, flu, fever); err != nil {
		t.Fatalf("AssociateSymptom (repeat): %v", err)
	}

	stored, err := diseases.GetByName(ctx, "Flu")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if len(stored.Symptoms) != 1 || stored.Symptoms[0].Name != "fever" {
		t.Errorf("stored symptoms = %+v", stored.Symptoms)
	}
	if len(stored.Precautions) != 2 {
		t.Errorf("stored precautions = %+v", stored.Precautions)
	}
}

func TestKnowledgeSourceLoad(t *testing.T) {
	symptoms, diseases := setupTestEnv(t)
	ctx := context.Background()

	fever, _ := symptoms.Upsert(ctx, "fever", 3)
	cough, _ := symptoms.Upsert(ctx, "cough", 2)
	flu, _ := diseases.Upsert(ctx, "Flu")
	diseases.SetDescriptionIfEmpty(ctx, flu, "A viral infection.")
	diseases.AddPrecaution(ctx, flu, "rest")
	diseases.AssociateSymptom(ctx, flu, fever)
	diseases.AssociateSymptom(ctx, flu, cough)

	source := NewKnowledgeSource(symptoms, diseases)
	syms, recs, err := source.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(syms) != 2 {
		t.Errorf("symptoms = %+v", syms)
	}
	if len(recs) != 1 {
		t.Fatalf("diseases = %+v", recs)
	}
	rec := recs[0]
	if rec.Name != "Flu" || rec.Description != "A viral infection." {
		t.Errorf("record = %+v", rec)
	}
	if len(rec.Symptoms) != 2 || len(rec.Precautions) != 1 {
		t.Errorf("record associations = %+v", rec)
	}
}
