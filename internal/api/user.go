// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"learndash/admincli/internal/apierrors"
)

// GetProfile fetches the authenticated operator's profile.
func (c *Client) GetProfile(ctx context.Context) (User, error) {
	data, err := c.doJSON(ctx, http.MethodGet, epProfile, true, nil)
	if err != nil {
		return User{}, err
	}
	return decodePayload[User](data, "profile")
}

// ProfileUpdate carries the mutable profile fields. Zero-valued fields are
// omitted so partial updates leave the rest untouched.
type ProfileUpdate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// UpdateProfile applies a partial profile update and returns the stored user.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (User, error) {
	data, err := c.doJSON(ctx, http.MethodPut, epProfile, true, update)
	if err != nil {
		return User{}, err
	}
	return decodePayload[User](data, "profile")
}

// ChangePassword replaces the operator's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	_, err := c.doJSON(ctx, http.MethodPost, epChangePassword, true, body)
	return err
}

// UploadProfileImage streams a local image file as a multipart form upload.
// A file that cannot be opened short-circuits with a local error before any
// network activity. The bearer credential is attached directly since the
// request does not carry the standard JSON headers.
func (c *Client) UploadProfileImage(ctx context.Context, filePath string) (UploadImageResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return UploadImageResult{}, apierrors.NewValidation(fmt.Sprintf("cannot open image file: %v", err))
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		defer file.Close()
		part, err := createImagePart(mw, filePath)
		if err == nil {
			_, err = io.Copy(part, file)
		}
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+epUploadImage, pr)
	if err != nil {
		return UploadImageResult{}, apierrors.NewTransport("build request", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return UploadImageResult{}, apierrors.NewTransport(describeTransportError(err), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return UploadImageResult{}, apierrors.NewTransport("read response body", err)
	}
	data, envErr := interpret(raw, resp.StatusCode)
	if envErr != nil {
		if resp.StatusCode == http.StatusUnauthorized && c.onAuthDenied != nil {
			c.onAuthDenied()
		}
		return UploadImageResult{}, envErr
	}
	return decodePayload[UploadImageResult](data, "upload-image")
}

// createImagePart writes the multipart header for the "image" form field
// with a content type inferred from the file extension.
func createImagePart(mw *multipart.Writer, filePath string) (io.Writer, error) {
	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="image"; filename="%s"`, filepath.Base(filePath)))
	h.Set("Content-Type", contentType)
	return mw.CreatePart(h)
}

// RemoveProfileImage deletes the stored profile image.
func (c *Client) RemoveProfileImage(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodDelete, epRemoveImage, true, nil)
	return err
}
