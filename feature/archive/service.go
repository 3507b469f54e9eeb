package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"govdoc-manager/core/storage"
	"govdoc-manager/core/versioning"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ExportFunc produces the full version history of one document kind in
// its serializable form. The boolean is false when the lineage is empty.
type ExportFunc func(ctx context.Context) (any, bool, error)

// Result describes where an archive was written.
type Result struct {
	Bucket string `json:"bucket"`
	Object string `json:"object"`
}

// Service snapshots document version histories into object storage.
type Service struct {
	client  storage.Client
	bucket  string
	logger  *zap.Logger
	exports map[string]ExportFunc
}

// NewService creates a new archive service. The exports map binds each
// archivable document kind to its history exporter.
func NewService(client storage.Client, bucket string, logger *zap.Logger, exports map[string]ExportFunc) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		logger:  logger,
		exports: exports,
	}
}

// Kinds returns the archivable document kinds, sorted.
func (s *Service) Kinds() []string {
	kinds := make([]string, 0, len(s.exports))
	for kind := range s.exports {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Archive serializes the full version history of the given kind to JSON
// and uploads it. The boolean is false when the kind has no versions to
// archive.
func (s *Service) Archive(ctx context.Context, kind string) (Result, bool, error) {
	export, ok := s.exports[kind]
	if !ok {
		return Result{}, false, versioning.Validationf("unknown document kind %q", kind)
	}

	document, found, err := export(ctx)
	if err != nil {
		return Result{}, false, err
	}
	if !found {
		return Result{}, false, nil
	}

	payload, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return Result{}, false, fmt.Errorf("failed to serialize %s archive: %w", kind, err)
	}

	if err := s.ensureBucket(ctx); err != nil {
		return Result{}, false, err
	}

	object := fmt.Sprintf("%s/%s-%s.json", kind, time.Now().UTC().Format("20060102T150405Z"), uuid.NewString())
	_, err = s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return Result{}, false, fmt.Errorf("failed to upload %s archive: %w", kind, err)
	}

	s.logger.Info("Archive written",
		zap.String("kind", kind),
		zap.String("bucket", s.bucket),
		zap.String("object", object),
		zap.Int("bytes", len(payload)))

	return Result{Bucket: s.bucket, Object: object}, true, nil
}

// Prune removes old archives of the given kind, keeping only the keep
// most recent ones. Object names start with an UTC timestamp, so
// lexicographic order is chronological. It returns the removed object
// names.
func (s *Service) Prune(ctx context.Context, kind string, keep int) ([]string, error) {
	if _, ok := s.exports[kind]; !ok {
		return nil, versioning.Validationf("unknown document kind %q", kind)
	}
	if keep < 1 {
		return nil, versioning.Validationf("keep must be at least 1")
	}

	var names []string
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    kind + "/",
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list %s archives: %w", kind, object.Err)
		}
		names = append(names, object.Key)
	}

	if len(names) <= keep {
		return nil, nil
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	removed := make([]string, 0, len(names)-keep)
	for _, name := range names[keep:] {
		if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("failed to remove archive %s: %w", name, err)
		}
		removed = append(removed, name)
	}

	s.logger.Info("Archives pruned",
		zap.String("kind", kind),
		zap.Int("kept", keep),
		zap.Int("removed", len(removed)))

	return removed, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}
