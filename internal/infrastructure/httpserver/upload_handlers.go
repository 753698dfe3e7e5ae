package httpserver

import (
	"io"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain/media"
)

// uploadImage accepts a multipart "file" field for one of the upload kinds.
func (s *Server) uploadImage(c echo.Context) error {
	kind := media.Kind(c.Param("kind"))
	if !kind.IsValid() {
		return echo.NewHTTPError(http.StatusNotFound, "Not Found")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		uploadsTotal.WithLabelValues(string(kind), "rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "No file provided")
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file provided")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read upload")
	}

	img, err := s.uploadSvc.UploadImage(c.Request().Context(), kind, fh.Filename, fh.Header.Get(echo.HeaderContentType), data)
	if err != nil {
		uploadsTotal.WithLabelValues(string(kind), "rejected").Inc()
		return err
	}
	uploadsTotal.WithLabelValues(string(kind), "stored").Inc()

	return c.JSON(http.StatusCreated, media.UploadResponse{
		Success: true,
		Data:    img,
		Message: kind.Label() + " uploaded successfully",
	})
}

// deleteImage takes the public id from the rest of the path. It may be
// URL-encoded as a single segment or given with literal slashes.
func (s *Server) deleteImage(c echo.Context) error {
	raw := c.Param("*")
	publicID, err := url.PathUnescape(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid public ID")
	}

	if err := s.uploadSvc.DeleteImage(c.Request().Context(), publicID); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"public_id": publicID}).Debug("image delete requested")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Image deleted successfully"})
}
