package dao

import (
	"context"

	"sevai/sevai/knowledge"
)

// KnowledgeSource adapts the reference-data DAOs to the knowledge.Source
// interface so the catalog can rebuild its in-process snapshot from the
// database.
type KnowledgeSource struct {
	symptoms *SymptomDAO
	diseases *DiseaseDAO
}

func NewKnowledgeSource(symptoms *SymptomDAO, diseases *DiseaseDAO) *KnowledgeSource {
	return &KnowledgeSource{symptoms: symptoms, diseases: diseases}
}

func (s *KnowledgeSource) Load(ctx context.Context) ([]knowledge.Symptom, []knowledge.DiseaseRecord, error) {
	rows, err := s.symptoms.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	symptoms := make([]knowledge.Symptom, 0, len(rows))
	for _, row := range rows {
		symptoms = append(symptoms, knowledge.Symptom{Name: row.Name, Weight: row.Weight})
	}

	diseaseRows, err := s.diseases.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	diseases := make([]knowledge.DiseaseRecord, 0, len(diseaseRows))
	for _, row := range diseaseRows {
		rec := knowledge.DiseaseRecord{
			Name:        row.Name,
			Description: row.Description,
		}
		for _, p := range row.Precautions {
			rec.Precautions = append(rec.Precautions, p.Text)
		}
		for _, sym := range row.Symptoms {
			rec.Symptoms = append(rec.Symptoms, sym.Name)
		}
		diseases = append(diseases, rec)
	}
	return symptoms, diseases, nil
}
