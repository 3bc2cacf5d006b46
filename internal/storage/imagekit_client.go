package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// ClientOptions configures the ImageKit API client.
type ClientOptions struct {
	UploadURL  string
	APIURL     string
	PrivateKey string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client talks to the ImageKit upload and management APIs. The private key
// authenticates via HTTP basic auth with an empty password.
type Client struct {
	httpClient *http.Client
	uploadURL  string
	apiURL     string
	privateKey string
}

// NewClient constructs an ImageKit API client with bounded timeouts.
func NewClient(opts ClientOptions) *Client {
	uploadURL := strings.TrimRight(opts.UploadURL, "/")
	if uploadURL == "" {
		uploadURL = "https://upload.imagekit.io/api/v1/files/upload"
	}
	apiURL := strings.TrimRight(opts.APIURL, "/")
	if apiURL == "" {
		apiURL = "https://api.imagekit.io/v1"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: client,
		uploadURL:  uploadURL,
		apiURL:     apiURL,
		privateKey: strings.TrimSpace(opts.PrivateKey),
	}
}

// uploadShape identifies which known remote response shape produced an
// UploadResult.
type uploadShape int

const (
	shapeUnknown uploadShape = iota
	shapeFilePath
	shapeName
)

// UploadResult is the decoded outcome of a remote upload. The remote host
// answers in one of several shapes; the shape is resolved once here at the
// network boundary and never re-inspected downstream.
type UploadResult struct {
	shape    uploadShape
	filePath string
	name     string
	fileID   string
}

// UploadResultFromPath builds a result from a response carrying the full
// uploaded file path.
func UploadResultFromPath(filePath, fileID string) UploadResult {
	return UploadResult{shape: shapeFilePath, filePath: filePath, fileID: fileID}
}

// UploadResultFromName builds a result from a response carrying only the bare
// stored file name.
func UploadResultFromName(name, fileID string) UploadResult {
	return UploadResult{shape: shapeName, name: name, fileID: fileID}
}

// FileID returns the remote identifier assigned to the upload, if any.
func (r UploadResult) FileID() string { return r.fileID }

// StoredName derives the storage name for the upload. Preference order: the
// full returned path, then folder plus returned name, then folder plus the
// locally generated id. The order is a compatibility contract with the remote
// host's observed response shapes.
func (r UploadResult) StoredName(folder, localID string) string {
	switch r.shape {
	case shapeFilePath:
		return strings.TrimLeft(r.filePath, "/")
	case shapeName:
		return strings.Trim(folder, "/") + "/" + r.name
	default:
		return strings.Trim(folder, "/") + "/" + localID
	}
}

// Upload sends the payload to the remote host. Image content arrives as a
// base64 data URI string; everything else as raw bytes. The remote host is
// asked to enforce a unique file name.
func (c *Client) Upload(ctx context.Context, folder, fileName string, raw []byte, dataURI string) (UploadResult, error) {
	if c == nil {
		return UploadResult{}, errors.New("storage: imagekit client not configured")
	}
	if c.privateKey == "" {
		return UploadResult{}, errors.New("storage: imagekit private key is missing")
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if dataURI != "" {
		if err := mw.WriteField("file", dataURI); err != nil {
			return UploadResult{}, err
		}
	} else {
		part, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			return UploadResult{}, err
		}
		if _, err := part.Write(raw); err != nil {
			return UploadResult{}, err
		}
	}
	if err := mw.WriteField("fileName", fileName); err != nil {
		return UploadResult{}, err
	}
	if err := mw.WriteField("folder", folder); err != nil {
		return UploadResult{}, err
	}
	if err := mw.WriteField("useUniqueFileName", "true"); err != nil {
		return UploadResult{}, err
	}
	if err := mw.Close(); err != nil {
		return UploadResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadResult{}, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return UploadResult{}, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return UploadResult{}, fmt.Errorf("storage: imagekit upload http %d: %s", resp.StatusCode, apiErrorMessage(payload))
	}
	return decodeUploadResponse(payload), nil
}

// Delete removes the remote file with the given identifier. A 2xx status or
// an empty body counts as success.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	if c == nil {
		return errors.New("storage: imagekit client not configured")
	}
	if c.privateKey == "" {
		return errors.New("storage: imagekit private key is missing")
	}
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return errors.New("storage: file id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.apiURL+"/files/"+fileID, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage: imagekit delete http %d: %s", resp.StatusCode, apiErrorMessage(payload))
	}
	return nil
}

// decodeUploadResponse folds the remote host's heterogeneous response shapes
// into a tagged UploadResult.
func decodeUploadResponse(payload []byte) UploadResult {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return UploadResult{}
	}
	fileID, _ := raw["fileId"].(string)
	if filePath, ok := raw["filePath"].(string); ok && filePath != "" {
		return UploadResultFromPath(filePath, fileID)
	}
	if name, ok := raw["name"].(string); ok && name != "" {
		return UploadResultFromName(name, fileID)
	}
	return UploadResult{fileID: fileID}
}

func apiErrorMessage(payload []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(payload))
}
