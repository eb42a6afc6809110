package io

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/svglayer/pkg/errors"
)

var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// MIMEType returns the image MIME type for path's extension.
func MIMEType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mime, ok := mimeByExt[ext]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidImage, "unsupported image type %q", ext)
	}
	return mime, nil
}

// EncodeDataURI returns data as a base64 data URI of the given MIME type.
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ImageToDataURI reads the image at path and returns it as a data URI.
// An empty mime is inferred from the file extension.
func ImageToDataURI(path, mime string) (string, error) {
	if mime == "" {
		var err error
		if mime, err = MIMEType(path); err != nil {
			return "", err
		}
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", errors.New(errors.ErrCodeInvalidImage, "not an image type: %s", mime)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "image %s not found", path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "read image %s", path)
	}
	if len(data) == 0 {
		return "", errors.New(errors.ErrCodeInvalidImage, "image %s is empty", path)
	}
	return EncodeDataURI(mime, data), nil
}
