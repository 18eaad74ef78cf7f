package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/polisure/polisure/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	ErrFileTooLarge       = errors.New("upload_file_too_large")
	ErrFileTypeNotAllowed = errors.New("upload_file_type_not_allowed")
)

// contentTypes maps allowed extensions to the content types accepted
// for them. Extension and declared content type must both pass.
var contentTypes = map[string][]string{
	"pdf":  {"application/pdf"},
	"jpeg": {"image/jpeg"},
	"jpg":  {"image/jpeg"},
	"png":  {"image/png"},
}

// Store writes claim attachments to local disk and hands back the
// public path they are served from.
type Store struct {
	log    *zap.Logger
	dir    string
	holder *config.UploadConfigHolder
}

type Params struct {
	fx.In

	Log    *zap.Logger
	Config config.Config
	Holder *config.UploadConfigHolder
}

func NewStore(p Params) (*Store, error) {
	if err := os.MkdirAll(p.Config.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		log:    p.Log.Named("upload.store"),
		dir:    p.Config.UploadDir,
		holder: p.Holder,
	}, nil
}

// Save validates and persists one uploaded file, returning the public
// path under /uploads.
func (s *Store) Save(header *multipart.FileHeader) (string, error) {
	cfg := s.holder.Get()

	if header.Size > cfg.MaxSizeBytes {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !cfg.Allowed(ext) {
		return "", ErrFileTypeNotAllowed
	}
	if !contentTypeAllowed(ext, header.Header.Get("Content-Type")) {
		return "", ErrFileTypeNotAllowed
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// The size header is client-supplied; cap the copy so an oversized
	// body cannot sneak past it.
	written, err := io.Copy(dst, io.LimitReader(src, cfg.MaxSizeBytes+1))
	if err != nil {
		os.Remove(dstPath)
		return "", err
	}
	if written > cfg.MaxSizeBytes {
		os.Remove(dstPath)
		return "", ErrFileTooLarge
	}

	s.log.Info("stored upload",
		zap.String("file", name),
		zap.Int64("bytes", written),
	)
	return "/uploads/" + name, nil
}

func contentTypeAllowed(ext string, contentType string) bool {
	allowed, ok := contentTypes[ext]
	if !ok {
		return false
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	for _, candidate := range allowed {
		if contentType == candidate {
			return true
		}
	}
	return false
}
