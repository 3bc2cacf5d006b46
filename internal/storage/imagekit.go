package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Destination folders on the remote host, chosen by file classification.
const (
	folderImages    = "/skyline/images/"
	folderDocuments = "/skyline/documents/"
	folderProfiles  = "/skyline/profiles/"
	folderServices  = "/skyline/services/"
	folderUploads   = "/skyline/uploads/"
)

var imageExtensions = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
}

var documentExtensions = map[string]struct{}{
	"pdf": {}, "doc": {}, "docx": {}, "txt": {}, "rtf": {},
}

// ImageKitStorage stores media on the ImageKit CDN. In development it falls
// back to the local FileStore when the remote host rejects an upload; outside
// development remote failures propagate to the caller.
type ImageKitStorage struct {
	client   *Client
	endpoint string
	fallback *FileStore
	devMode  bool
	log      zerolog.Logger
}

// NewImageKitStorage constructs the CDN-backed storage. fallback may be nil
// when no local store is available.
func NewImageKitStorage(client *Client, endpoint string, fallback *FileStore, devMode bool, log zerolog.Logger) *ImageKitStorage {
	return &ImageKitStorage{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		fallback: fallback,
		devMode:  devMode,
		log:      log,
	}
}

// Save uploads the content under a collision-resistant generated name and
// returns the storage name the remote host filed it under.
func (s *ImageKitStorage) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if name == "" {
		name = uuid.NewString()
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("storage: read content: %w", err)
	}

	ext := fileExtension(name)
	fileID := uuid.NewString()
	if ext != "" {
		fileID += "." + ext
	}
	folder := folderFor(name)

	mimeType := mimeFor(ext)
	dataURI := ""
	if strings.HasPrefix(mimeType, "image/") {
		dataURI = "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	}

	res, err := s.client.Upload(ctx, folder, fileID, data, dataURI)
	if err != nil {
		if s.devMode && s.fallback != nil {
			s.log.Warn().Err(err).Str("name", name).Msg("imagekit upload failed, falling back to local storage")
			return s.fallback.Save(ctx, name, bytes.NewReader(data))
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	stored := res.StoredName(folder, fileID)
	s.log.Info().Str("name", stored).Msg("uploaded file")
	return stored, nil
}

// Delete removes the remote file whose id is the trailing segment of the
// stored name. Failures are logged and reported as false, never raised: an
// orphaned remote file is an acceptable operational residue.
func (s *ImageKitStorage) Delete(ctx context.Context, name string) bool {
	fileID := name
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		fileID = name[idx+1:]
	}
	if err := s.client.Delete(ctx, fileID); err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("failed to delete remote file")
		return false
	}
	return true
}

// Exists always reports false. The remote host has no existence check, and
// false guarantees callers proceed to upload under a fresh unique name.
func (s *ImageKitStorage) Exists(ctx context.Context, name string) bool {
	return false
}

// URL resolves a stored name against the configured CDN endpoint. Absolute
// URLs pass through unchanged.
func (s *ImageKitStorage) URL(name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return s.endpoint + "/" + strings.TrimLeft(name, "/")
}

// Size is not answerable against the remote host; 0 is a sentinel, not a size.
func (s *ImageKitStorage) Size(ctx context.Context, name string) int64 {
	return 0
}

// ModTime is not supported by the remote host.
func (s *ImageKitStorage) ModTime(ctx context.Context, name string) (time.Time, error) {
	return time.Time{}, ErrUnsupported
}

// CreatedTime is not supported by the remote host.
func (s *ImageKitStorage) CreatedTime(ctx context.Context, name string) (time.Time, error) {
	return time.Time{}, ErrUnsupported
}

// folderFor classifies the destination folder from the original file name.
func folderFor(name string) string {
	lower := strings.ToLower(name)
	ext := fileExtension(lower)
	if _, ok := imageExtensions[ext]; ok {
		return folderImages
	}
	if _, ok := documentExtensions[ext]; ok {
		return folderDocuments
	}
	if strings.Contains(lower, "profile") {
		return folderProfiles
	}
	if strings.Contains(lower, "service") {
		return folderServices
	}
	return folderUploads
}

func fileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

func mimeFor(ext string) string {
	if mt, ok := imageExtensions[ext]; ok {
		return mt
	}
	return "application/octet-stream"
}

var _ Storage = (*ImageKitStorage)(nil)
