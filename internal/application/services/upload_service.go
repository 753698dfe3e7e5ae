package services

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/media"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/utils"
)

type UploadService struct {
	store    ports.ImageStore
	folder   string
	maxBytes int64
	logger   *logrus.Logger
}

func NewUploadService(store ports.ImageStore, folder string, maxBytes int64, logger *logrus.Logger) ports.UploadService {
	return &UploadService{store: store, folder: folder, maxBytes: maxBytes, logger: logger}
}

// UploadImage checks type and size, then stores the image under
// <folder>/<kind folder>/<name>-<id>. The declared content type is only
// trusted when the bytes agree with it.
func (s *UploadService) UploadImage(ctx context.Context, kind media.Kind, filename, contentType string, data []byte) (*media.Image, error) {
	if len(data) == 0 {
		return nil, domain.Errorf(domain.ErrInvalidInput, "%s", media.ErrNoFile.Error())
	}
	if !kind.IsValid() {
		return nil, domain.Errorf(domain.ErrNotFound, "Unknown upload kind '%s'", kind)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, domain.Errorf(domain.ErrInvalidInput, "%s", media.ErrTooLarge.Error())
	}

	sniffed := http.DetectContentType(data)
	format, ok := media.AllowedTypes[sniffed]
	if !ok || !sameType(contentType, sniffed) {
		return nil, domain.Errorf(domain.ErrInvalidInput, "%s", media.ErrUnsupportedType.Error())
	}

	img := &media.Image{Format: format, Size: int64(len(data))}
	// WebP has no decoder registered; its dimensions stay zero.
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		img.Width, img.Height = cfg.Width, cfg.Height
	}

	img.PublicID = path.Join(s.folder, kind.Folder(), publicName(filename))
	url, err := s.store.Put(ctx, img.PublicID, sniffed, data)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"public_id": img.PublicID, "size": img.Size}).WithError(err).Error("failed to store image")
		return nil, err
	}
	img.SecureURL = url

	s.logger.WithFields(logrus.Fields{"public_id": img.PublicID, "kind": kind, "size": img.Size}).Info("image uploaded")
	return img, nil
}

// sameType tolerates a missing or generic declared type.
func sameType(declared, sniffed string) bool {
	declared = strings.ToLower(strings.TrimSpace(strings.SplitN(declared, ";", 2)[0]))
	return declared == "" || declared == "application/octet-stream" || declared == sniffed
}

func publicName(filename string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	id := uuid.NewString()
	if slug := utils.Slugify(base); slug != "" {
		return slug + "-" + id[:8]
	}
	return id
}

func (s *UploadService) DeleteImage(ctx context.Context, publicID string) error {
	publicID = strings.Trim(publicID, "/")
	if publicID == "" {
		return domain.Errorf(domain.ErrInvalidInput, "Public ID is required")
	}
	if err := s.store.Delete(ctx, publicID); err != nil {
		return err
	}
	s.logger.WithField("public_id", publicID).Info("image deleted")
	return nil
}
