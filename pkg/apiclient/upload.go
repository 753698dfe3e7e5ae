package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// UploadedImage describes an image stored by the upload endpoints.
type UploadedImage struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	Size      int64  `json:"size"`
}

// UploadsResource sends multipart image uploads. Uploads are neither cached
// nor retried.
type UploadsResource struct{ c *Client }

func (c *Client) Uploads() UploadsResource { return UploadsResource{c: c} }

// Image uploads r under the given kind ("image", "service", "tour" or "blog").
func (u UploadsResource) Image(ctx context.Context, kind, filename string, r io.Reader) (*UploadedImage, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, u.c.cfg.Timeout)
	defer cancel()

	endpoint := u.c.cfg.BaseURL + "/uploads/" + url.PathEscape(kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token := u.c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := u.c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	if readErr != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", readErr)
	}

	var payload struct {
		Success bool          `json:"success"`
		Data    UploadedImage `json:"data"`
		Message string        `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if !payload.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
	}
	return &payload.Data, nil
}

// DeleteImage removes a previously uploaded image by its public id.
func (u UploadsResource) DeleteImage(ctx context.Context, publicID string) error {
	_, err := u.c.Request(ctx, "/uploads/image/"+url.PathEscape(publicID), &RequestOptions{Method: http.MethodDelete})
	return err
}
