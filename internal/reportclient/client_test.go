package reportclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicereport/internal/domain"
)

func TestUploadSendsMultipartAudio(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err)

		file, header, err := r.FormFile("audio")
		if !assert.NoError(t, err) {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "recording.webm", header.Filename)
		assert.Equal(t, "audio/webm;codecs=opus", header.Header.Get("Content-Type"))
		assert.Equal(t, "c1c2", string(data))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"report":"Line1\nLine2","session_id":"abc"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	report, err := client.Upload(context.Background(), domain.AudioPayload{
		Encoding: domain.Encoding{MIMEType: "audio/webm;codecs=opus", Extension: "webm"},
		Data:     []byte("c1c2"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Report{Text: "Line1\nLine2", SessionID: "abc"}, report)
}

func TestUploadWithoutSessionID(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, `{"success":true,"report":"ok","session_id":null}`)
	defer server.Close()

	report, err := newTestClient(t, server.URL).Upload(context.Background(), wavPayload())
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Text)
	assert.Empty(t, report.SessionID)
}

func TestUploadErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		status   int
		body     string
		code     domain.ErrorCode
		message  string
		rejected bool
	}{
		{name: "non 2xx", status: http.StatusInternalServerError, body: `{"success":false}`, code: domain.ErrorCodeTransport, message: "Server error: 500"},
		{name: "not found", status: http.StatusNotFound, body: `nope`, code: domain.ErrorCodeTransport, message: "Server error: 404"},
		{name: "malformed", status: http.StatusOK, body: `<html>`, code: domain.ErrorCodeProtocol, message: "Unexpected server response"},
		{name: "missing report", status: http.StatusOK, body: `{"success":true}`, code: domain.ErrorCodeProtocol, message: "Unexpected server response"},
		{name: "wrong type", status: http.StatusOK, body: `{"success":"yes","report":"x"}`, code: domain.ErrorCodeProtocol, message: "Unexpected server response"},
		{name: "rejected", status: http.StatusOK, body: `{"success":false,"error":"Transcription failed"}`, code: domain.ErrorCodeProtocol, message: "Transcription failed", rejected: true},
		{name: "rejected without message", status: http.StatusOK, body: `{"success":false}`, code: domain.ErrorCodeProtocol, message: "Upload failed", rejected: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := jsonServer(t, tc.status, tc.body)
			defer server.Close()

			_, err := newTestClient(t, server.URL).Upload(context.Background(), wavPayload())
			require.Error(t, err)
			assert.Equal(t, tc.code, domain.CodeOf(err, ""))
			assert.Equal(t, tc.message, domain.MessageOf(err))
			assert.Equal(t, tc.rejected, errors.Is(err, domain.ErrServerRejected))
		})
	}
}

func TestUploadTimeoutIsTransportError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client, err := New(server.URL, 50*time.Millisecond)
	require.NoError(t, err)

	_, err = client.Upload(context.Background(), wavPayload())
	require.Error(t, err)
	assert.Equal(t, domain.ErrorCodeTransport, domain.CodeOf(err, ""))
	assert.Equal(t, "Request timed out", domain.MessageOf(err))
}

func TestUploadConnectionRefused(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestClient(t, url).Upload(context.Background(), wavPayload())
	require.Error(t, err)
	assert.Equal(t, domain.ErrorCodeTransport, domain.CodeOf(err, ""))
}

func TestGenerateDocument(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate_pdf", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"session_id": "abc", "patient_name": "", "doctor_name": ""}, body)

		_, _ = io.WriteString(w, `{"success":true,"pdf_path":"r1.pdf"}`)
	}))
	defer server.Close()

	link, err := newTestClient(t, server.URL).GenerateDocument(context.Background(), "abc", domain.DocumentRequest{})
	require.NoError(t, err)
	assert.Equal(t, "r1.pdf", link.PDFPath)
	assert.Equal(t, "/download_pdf/r1.pdf", link.Path)
	assert.Equal(t, server.URL+"/download_pdf/r1.pdf", link.URL)
}

func TestGenerateDocumentErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		status   int
		body     string
		code     domain.ErrorCode
		message  string
		rejected bool
	}{
		{name: "rejected", status: http.StatusOK, body: `{"success":false,"error":"Session not found"}`, code: domain.ErrorCodeProtocol, message: "Session not found", rejected: true},
		{name: "rejected with error status", status: http.StatusBadRequest, body: `{"success":false,"error":"No session ID provided"}`, code: domain.ErrorCodeProtocol, message: "No session ID provided", rejected: true},
		{name: "error status without body", status: http.StatusInternalServerError, body: `oops`, code: domain.ErrorCodeTransport, message: "Server error: 500"},
		{name: "missing path", status: http.StatusOK, body: `{"success":true}`, code: domain.ErrorCodeProtocol, message: "Unexpected server response"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := jsonServer(t, tc.status, tc.body)
			defer server.Close()

			_, err := newTestClient(t, server.URL).GenerateDocument(context.Background(), "abc", domain.DocumentRequest{PatientName: "Ann"})
			require.Error(t, err)
			assert.Equal(t, tc.code, domain.CodeOf(err, ""))
			assert.Equal(t, tc.message, domain.MessageOf(err))
			assert.Equal(t, tc.rejected, errors.Is(err, domain.ErrServerRejected))
		})
	}
}

func TestDocumentLinkKeepsBasePath(t *testing.T) {
	t.Parallel()

	client, err := New("https://reports.example.com/api/", time.Second)
	require.NoError(t, err)

	link := client.DocumentLink("r 1.pdf")
	assert.Equal(t, "/download_pdf/r 1.pdf", link.Path)
	assert.Equal(t, "https://reports.example.com/api/download_pdf/r%201.pdf", link.URL)
	assert.Equal(t, "https://reports.example.com/api", client.BaseURL())
}

func TestNewRejectsBadURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "ftp://host", "http://", "::"} {
		_, err := New(raw, time.Second)
		assert.Error(t, err, raw)
	}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := New(baseURL, 5*time.Second)
	require.NoError(t, err)
	return client
}

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
}

func wavPayload() domain.AudioPayload {
	return domain.AudioPayload{
		Encoding: domain.Encoding{MIMEType: "audio/wav", Extension: "wav"},
		Data:     []byte("RIFF"),
	}
}
