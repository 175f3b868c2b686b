package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadFile is one file to include in a multipart upload.
type UploadFile struct {
	Filename string
	Content  io.Reader
}

// UploadImage uploads a single image and returns its URL.
func (c *Client) UploadImage(ctx context.Context, file UploadFile) (string, error) {
	var resp struct {
		Message  string `json:"message"`
		ImageURL string `json:"image_url"`
	}
	if err := c.doMultipart(ctx, "/upload/image", "file", []UploadFile{file}, &resp); err != nil {
		return "", err
	}
	return resp.ImageURL, nil
}

// UploadImages uploads a batch of up to five images in one multipart request
// and returns their URLs in upload order.
func (c *Client) UploadImages(ctx context.Context, files []UploadFile) ([]string, error) {
	var resp struct {
		Message   string   `json:"message"`
		ImageURLs []string `json:"image_urls"`
	}
	if err := c.doMultipart(ctx, "/upload/images", "files", files, &resp); err != nil {
		return nil, err
	}
	return resp.ImageURLs, nil
}

func (c *Client) doMultipart(ctx context.Context, path, fieldName string, files []UploadFile, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, file := range files {
		part, err := writer.CreateFormFile(fieldName, file.Filename)
		if err != nil {
			return fmt.Errorf("failed to create multipart field for %s: %w", file.Filename, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("failed to write file %s to request: %w", file.Filename, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}
