package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"sevai/sevai/config"
	"sevai/sevai/sources/session"
	"sevai/sevai/utils/types"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient archives completed assessments as JSON objects so doctors
// have an auditable record outside the session store's retention window.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

// AssessmentObject is the archived shape of one completed assessment.
type AssessmentObject struct {
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	Language  string         `json:"language"`
	Symptoms  []string       `json:"symptoms"`
	Reply     types.Reply    `json:"reply"`
	History   []session.Turn `json:"history"`
	Timestamp time.Time      `json:"timestamp"`
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	bucket := cfg.MinIOBucket
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: false,
		},
	)
	if err != nil {
		return nil, err
	}
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{client: client, bucket: bucket}, nil
}

// UploadAssessment stores the session transcript and final reply under
// assessments/<session-id>.json and returns the object key.
func (m *MinIOClient) UploadAssessment(ctx context.Context, sess *session.Session, reply *types.Reply) (string, error) {
	key := filepath.Join("assessments", fmt.Sprintf("%s.json", sess.ID))

	obj := AssessmentObject{
		SessionID: sess.ID,
		UserID:    sess.UserID,
		Language:  sess.Language,
		Symptoms:  sess.DetectedSymptoms,
		Reply:     *reply,
		History:   sess.History,
		Timestamp: time.Now(),
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}

	_, err = m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", err
	}

	return key, nil
}
