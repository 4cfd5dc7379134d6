package media

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds limit of 10MB")
	ErrFileType     = errors.New("invalid file type. Allowed types: JPG, PNG, WEBP")
	ErrVideoSize    = errors.New("file size exceeds limit of 100MB")
	ErrVideoType    = errors.New("invalid file type. Allowed types: MP4, WEBM")
	ErrFileRequired = errors.New("no file provided")
)

const (
	MaxImageSize = 10 * 1024 * 1024  // 10MB
	MaxVideoSize = 100 * 1024 * 1024 // 100MB
)

var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var AllowedVideoTypes = map[string]bool{
	".mp4":  true,
	".webm": true,
}

func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > MaxImageSize {
		return ErrFileSize
	}

	ext := filepath.Ext(strings.ToLower(file.Filename))
	if !AllowedImageTypes[ext] {
		return ErrFileType
	}

	return nil
}

func ValidateVideo(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > MaxVideoSize {
		return ErrVideoSize
	}

	ext := filepath.Ext(strings.ToLower(file.Filename))
	if !AllowedVideoTypes[ext] {
		return ErrVideoType
	}

	return nil
}
