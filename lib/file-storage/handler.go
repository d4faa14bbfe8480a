package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/config"
	"talentflow-backend/db"
	filesdbstorage "talentflow-backend/lib/file-storage/storage"
	s3client "talentflow-backend/s3"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	UploadResume(ctx context.Context, candidateID string, file []byte, fileName, contentType string) error
	GetResume(ctx context.Context, candidateID string) (data []byte, fileName string, err error)
	GetResumeURL(ctx context.Context, candidateID string) (link string, err error)
	UploadJD(ctx context.Context, postID string, file []byte, fileName, contentType string) error
	// DeleteCandidateFiles removes every stored blob of the candidate,
	// the cascade of a candidate deletion.
	DeleteCandidateFiles(ctx context.Context, candidateID string) error
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
		store:    filesdbstorage.NewInstance(db.DB),
		bucket:   config.Conf.S3.BucketName,
	}
}

type impl struct {
	s3client *minio.Client
	store    filesdbstorage.Provider
	bucket   string
}

func (i impl) UploadResume(ctx context.Context, candidateID string, file []byte, fileName, contentType string) error {
	objectName := fmt.Sprintf("resume/%s/%s", candidateID, fileName)
	if err := i.putObject(ctx, objectName, file, contentType); err != nil {
		return err
	}
	_, err := i.store.SaveFile(dbmodels.FileStorage{
		CandidateID: candidateID,
		FileType:    dbmodels.ResumeFileType,
		FileName:    fileName,
		ObjectName:  objectName,
		ContentType: contentType,
		Size:        int64(len(file)),
	})
	return err
}

func (i impl) GetResume(ctx context.Context, candidateID string) ([]byte, string, error) {
	rec, err := i.store.GetResume(candidateID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", errors.New("resume not found")
	}
	object, err := i.s3client.GetObject(ctx, i.bucket, rec.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "resume download failed")
	}
	defer object.Close()
	buf := new(bytes.Buffer)
	if _, err = buf.ReadFrom(object); err != nil {
		return nil, "", errors.Wrap(err, "resume read failed")
	}
	return buf.Bytes(), rec.FileName, nil
}

func (i impl) GetResumeURL(ctx context.Context, candidateID string) (string, error) {
	rec, err := i.store.GetResume(candidateID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("resume not found")
	}
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", rec.FileName))
	link, err := i.s3client.PresignedGetObject(ctx, i.bucket, rec.ObjectName, time.Hour, reqParams)
	if err != nil {
		return "", errors.Wrap(err, "presigned link generation failed")
	}
	return link.String(), nil
}

func (i impl) UploadJD(ctx context.Context, postID string, file []byte, fileName, contentType string) error {
	objectName := fmt.Sprintf("jd/%s/%s", postID, fileName)
	if err := i.putObject(ctx, objectName, file, contentType); err != nil {
		return err
	}
	_, err := i.store.SaveFile(dbmodels.FileStorage{
		PostID:      postID,
		FileType:    dbmodels.JDFileType,
		FileName:    fileName,
		ObjectName:  objectName,
		ContentType: contentType,
		Size:        int64(len(file)),
	})
	return err
}

func (i impl) DeleteCandidateFiles(ctx context.Context, candidateID string) error {
	list, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return err
	}
	for _, rec := range list {
		if err = i.s3client.RemoveObject(ctx, i.bucket, rec.ObjectName, minio.RemoveObjectOptions{}); err != nil {
			log.
				WithField("object_name", rec.ObjectName).
				WithError(err).
				Error("blob removal failed")
		}
	}
	return i.store.DeleteByCandidate(candidateID)
}

func (i impl) EnsureBucket(ctx context.Context) error {
	if i.s3client == nil {
		return errors.New("S3 client is not initialized")
	}
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, i.bucket, minio.MakeBucketOptions{Region: location})
}

func (i impl) putObject(ctx context.Context, objectName string, file []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.bucket, objectName, bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "blob upload failed")
	}
	return nil
}
