package domain

import "context"

// ImageFile is an image blob selected by a merchant, not yet hosted.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadedImage references a blob hosted by the external media API.
type UploadedImage struct {
	URL      string
	PublicID string
}

// MediaStore bridges to the hosted media API. Image bytes are never stored
// locally; products reference hosted URLs only.
type MediaStore interface {
	Upload(ctx context.Context, file ImageFile) (*UploadedImage, error)
	Delete(ctx context.Context, publicID string) error
}
