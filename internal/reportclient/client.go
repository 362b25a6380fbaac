// Package reportclient talks to the report server's upload and document endpoints.
package reportclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"voicereport/internal/domain"
)

const (
	uploadPath       = "/upload"
	generatePath     = "/generate_pdf"
	downloadPrefix   = "/download_pdf/"
	audioField       = "audio"
	maxResponseBytes = 8 << 20
	requestIDHeader  = "X-Request-ID"
)

// Client implements ports.ReportClient over HTTP.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its Timeout bounds every call.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("server url %q must use http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("server url %q has no host", baseURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "reportclient")
	return c, nil
}

// BaseURL returns the normalized server address.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type uploadResponse struct {
	Success   bool    `json:"success"`
	Report    string  `json:"report"`
	SessionID *string `json:"session_id"`
	Error     string  `json:"error"`
}

type documentRequest struct {
	SessionID   string `json:"session_id"`
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
}

type documentResponse struct {
	Success bool   `json:"success"`
	PDFPath string `json:"pdf_path"`
	Error   string `json:"error"`
}

// Upload submits the recording as multipart field "audio" and returns the report.
func (c *Client) Upload(ctx context.Context, payload domain.AudioPayload) (domain.Report, error) {
	body, contentType, err := encodeAudioForm(payload)
	if err != nil {
		return domain.Report{}, domain.NewError(domain.ErrorCodeTransport, "Upload could not be prepared", err)
	}

	status, respBody, err := c.do(ctx, uploadPath, contentType, body)
	if err != nil {
		return domain.Report{}, err
	}
	if status < 200 || status > 299 {
		return domain.Report{}, domain.NewError(domain.ErrorCodeTransport, fmt.Sprintf("Server error: %d", status), nil)
	}

	var resp uploadResponse
	if err := decodeValidated(uploadSchema, respBody, &resp); err != nil {
		return domain.Report{}, domain.NewError(domain.ErrorCodeProtocol, "Unexpected server response", err)
	}
	if !resp.Success {
		message := resp.Error
		if message == "" {
			message = "Upload failed"
		}
		return domain.Report{}, domain.NewError(domain.ErrorCodeProtocol, message, domain.ErrServerRejected)
	}

	report := domain.Report{Text: resp.Report}
	if resp.SessionID != nil {
		report.SessionID = *resp.SessionID
	}
	return report, nil
}

// GenerateDocument asks the server to render a document for a processed session.
func (c *Client) GenerateDocument(ctx context.Context, sessionID string, req domain.DocumentRequest) (domain.DocumentLink, error) {
	body, err := json.Marshal(documentRequest{
		SessionID:   sessionID,
		PatientName: req.PatientName,
		DoctorName:  req.DoctorName,
	})
	if err != nil {
		return domain.DocumentLink{}, domain.NewError(domain.ErrorCodeTransport, "Document request could not be prepared", err)
	}

	status, respBody, err := c.do(ctx, generatePath, "application/json", bytes.NewReader(body))
	if err != nil {
		return domain.DocumentLink{}, err
	}

	var resp documentResponse
	decodeErr := decodeValidated(documentSchema, respBody, &resp)
	if status < 200 || status > 299 {
		// Failure bodies still carry the server's message when they parse.
		if decodeErr == nil && !resp.Success {
			return domain.DocumentLink{}, domain.NewError(domain.ErrorCodeProtocol, resp.Error, domain.ErrServerRejected)
		}
		return domain.DocumentLink{}, domain.NewError(domain.ErrorCodeTransport, fmt.Sprintf("Server error: %d", status), nil)
	}
	if decodeErr != nil {
		return domain.DocumentLink{}, domain.NewError(domain.ErrorCodeProtocol, "Unexpected server response", decodeErr)
	}
	if !resp.Success {
		return domain.DocumentLink{}, domain.NewError(domain.ErrorCodeProtocol, resp.Error, domain.ErrServerRejected)
	}
	return c.DocumentLink(resp.PDFPath), nil
}

// DocumentLink builds the download reference for a generated document.
func (c *Client) DocumentLink(pdfPath string) domain.DocumentLink {
	path := downloadPrefix + pdfPath
	target := *c.baseURL
	target.Path = c.baseURL.Path + path
	target.RawPath = ""
	return domain.DocumentLink{PDFPath: pdfPath, Path: path, URL: target.String()}
}

func (c *Client) do(ctx context.Context, path, contentType string, body io.Reader) (int, []byte, error) {
	target := *c.baseURL
	target.Path = c.baseURL.Path + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), body)
	if err != nil {
		return 0, nil, domain.NewError(domain.ErrorCodeTransport, "Network error", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "path", path, "request_id", requestID, "error", err)
		return 0, nil, domain.NewError(domain.ErrorCodeTransport, networkMessage(err), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, domain.NewError(domain.ErrorCodeTransport, "Network error", fmt.Errorf("read response: %w", err))
	}
	c.logger.Debug("request complete",
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"bytes", len(respBody),
		"elapsed", time.Since(started),
	)
	return resp.StatusCode, respBody, nil
}

func networkMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out"
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return "Request timed out"
	}
	return "Network error"
}

func encodeAudioForm(payload domain.AudioPayload) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, audioField, payload.Encoding.FileName()))
	header.Set("Content-Type", payload.Encoding.MIMEType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create audio part: %w", err)
	}
	if _, err := part.Write(payload.Data); err != nil {
		return nil, "", fmt.Errorf("write audio part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
