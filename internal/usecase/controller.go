package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"voicereport/internal/domain"
	"voicereport/internal/encoding"
	"voicereport/internal/ports"
)

var (
	ErrNoActiveSession = errors.New("no active recording session")
	ErrBusy            = errors.New("recording session is busy")
	ErrNoReport        = errors.New("no report available for document generation")
)

const documentFailureMessage = "Failed to generate PDF"

// Config controls recording behavior.
type Config struct {
	Capture   ports.CaptureConfig
	ChunkSize int
	// MaxDuration stops a recording automatically. Zero means manual stop only.
	MaxDuration time.Duration
	Logger      *slog.Logger
}

// SessionController runs the record, upload and report lifecycle behind a single
// toggle control. At most one session is active at a time.
type SessionController struct {
	capture   ports.CaptureSource
	client    ports.ReportClient
	events    ports.EventSink
	finalizer reportFinalizer
	cfg       Config
	logger    *slog.Logger
	now       func() time.Time

	mu            sync.Mutex
	current       *session
	latest        *session
	nextID        uint64
	state         domain.SessionState
	reason        domain.SessionStateReason
	lastErr       string
	encoding      *domain.Encoding
	report        *domain.Report
	rendered      *domain.RenderedReport
	document      *domain.DocumentLink
	documentError string
}

func NewSessionController(
	capture ports.CaptureSource,
	client ports.ReportClient,
	renderer ports.ReportRenderer,
	events ports.EventSink,
	cfg Config,
) *SessionController {
	if cfg.ChunkSize < 256 {
		cfg.ChunkSize = 4096
	}
	if cfg.MaxDuration < 0 {
		cfg.MaxDuration = 0
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionController{
		capture:   capture,
		client:    client,
		events:    events,
		finalizer: newReportFinalizer(renderer),
		cfg:       cfg,
		logger:    logger.With("component", "session"),
		now:       time.Now,
		state:     domain.SessionStateIdle,
		reason:    domain.SessionReasonReady,
	}
}

// Toggle starts a session when idle and stops the recording when one is running.
// ctx must outlive the session: capture and upload are bound to it.
func (c *SessionController) Toggle(ctx context.Context) (domain.Status, error) {
	c.mu.Lock()
	switch c.state {
	case domain.SessionStateRecording:
		active := c.current
		c.mu.Unlock()
		err := c.requestStop(active, domain.SessionReasonStopRequested)
		return c.Status(), err

	case domain.SessionStateIdle, domain.SessionStateError:
		active := c.beginLocked(ctx)
		c.mu.Unlock()
		c.logger.Info("session requested", "session", active.id)
		c.events.SessionStateChanged(domain.SessionStateRequesting, domain.SessionReasonRequestingCapture)
		err := c.startCapture(active)
		return c.Status(), err

	default:
		state := c.state
		c.mu.Unlock()
		c.logger.Debug("toggle ignored", "state", state)
		return c.Status(), ErrBusy
	}
}

// Cancel stops the running recording as if the control were toggled. Captured
// audio is still uploaded.
func (c *SessionController) Cancel() error {
	c.mu.Lock()
	active := c.current
	c.mu.Unlock()
	return c.requestStop(active, domain.SessionReasonCancelRequested)
}

// Status returns the current backend status.
func (c *SessionController) Status() domain.Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := domain.Status{
		State:             c.state,
		Active:            c.state.Active(),
		Message:           c.reason.Message(),
		Control:           domain.ControlFor(c.state, c.idleLabel()),
		Report:            c.rendered,
		DocumentAvailable: c.report != nil,
		Document:          c.document,
		DocumentError:     c.documentError,
		Error:             c.lastErr,
	}
	if c.encoding != nil {
		enc := *c.encoding
		status.Encoding = &enc
	}
	if c.state == domain.SessionStateError && c.lastErr != "" {
		status.Message = "Error: " + c.lastErr
	}
	return status
}

// GenerateDocument asks the server for a document derived from the stored report.
// Session state is unaffected; failures are reported through the event sink.
// A result that arrives after a new session cleared the report is dropped.
func (c *SessionController) GenerateDocument(ctx context.Context, req domain.DocumentRequest) (domain.DocumentLink, error) {
	c.mu.Lock()
	report := c.report
	var sessionID string
	if report != nil {
		sessionID = report.SessionID
	}
	c.mu.Unlock()

	if sessionID == "" {
		return domain.DocumentLink{}, ErrNoReport
	}

	req.PatientName = strings.TrimSpace(req.PatientName)
	req.DoctorName = strings.TrimSpace(req.DoctorName)
	link, err := c.client.GenerateDocument(ctx, sessionID, req)
	if err != nil {
		message := documentFailureMessage
		var classified *domain.Error
		if errors.Is(err, domain.ErrServerRejected) && errors.As(err, &classified) && classified.Message != "" {
			message = classified.Message
		}
		c.mu.Lock()
		if c.report != report {
			c.mu.Unlock()
			c.logger.Debug("dropping document failure for a replaced report", "session_id", sessionID, "error", err)
			return domain.DocumentLink{}, err
		}
		c.documentError = message
		c.mu.Unlock()

		c.logger.Warn("document generation failed", "session_id", sessionID, "error", err)
		c.events.SessionError(domain.CodeOf(err, domain.ErrorCodeTransport), message)
		return domain.DocumentLink{}, err
	}

	c.mu.Lock()
	// A new session cleared the report this document was derived from.
	if c.report != report {
		c.mu.Unlock()
		c.logger.Debug("dropping document for a replaced report", "session_id", sessionID, "path", link.Path)
		return domain.DocumentLink{}, ErrNoReport
	}
	c.document = &link
	c.documentError = ""
	c.mu.Unlock()

	c.logger.Info("document ready", "session_id", sessionID, "path", link.Path)
	c.events.DocumentReady(link)
	return link, nil
}

// WaitIdle blocks until the current session, if any, has finished and its final
// events have been delivered.
func (c *SessionController) WaitIdle(ctx context.Context) error {
	c.mu.Lock()
	active := c.latest
	c.mu.Unlock()
	if active == nil {
		return nil
	}
	select {
	case <-active.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases an active session without uploading it.
func (c *SessionController) Close() error {
	c.mu.Lock()
	active := c.current
	if active == nil {
		c.mu.Unlock()
		return nil
	}
	c.current = nil
	c.state = domain.SessionStateIdle
	c.reason = domain.SessionReasonClosed
	c.mu.Unlock()

	err := active.release()
	c.logger.Info("session closed", "session", active.id)
	c.events.SessionStateChanged(domain.SessionStateIdle, domain.SessionReasonClosed)
	active.finish()
	return err
}

func (c *SessionController) idleLabel() string {
	if c.cfg.MaxDuration <= 0 {
		return domain.LabelStart
	}
	return fmt.Sprintf("🎤 Record Audio (%d sec)", int(c.cfg.MaxDuration.Round(time.Second)/time.Second))
}

func (c *SessionController) beginLocked(ctx context.Context) *session {
	c.nextID++
	active := newSession(ctx, c.nextID)
	c.current = active
	c.latest = active
	c.state = domain.SessionStateRequesting
	c.reason = domain.SessionReasonRequestingCapture
	c.lastErr = ""
	c.encoding = nil
	c.report = nil
	c.rendered = nil
	c.document = nil
	c.documentError = ""
	return active
}

func (c *SessionController) startCapture(active *session) error {
	handle, err := c.capture.Acquire(active.ctx, c.cfg.Capture)
	if err != nil {
		c.fail(active, domain.CodeOf(err, domain.ErrorCodePermissionDenied), err)
		return err
	}
	active.attach(handle)

	enc := encoding.Negotiate(handle.IsTypeSupported)
	if err := handle.Start(active.ctx, enc); err != nil {
		c.fail(active, domain.CodeOf(err, domain.ErrorCodePermissionDenied), err)
		return err
	}

	c.mu.Lock()
	if c.current != active {
		c.mu.Unlock()
		_ = active.release()
		return ErrNoActiveSession
	}
	var timer *time.Timer
	if c.cfg.MaxDuration > 0 {
		timer = time.AfterFunc(c.cfg.MaxDuration, func() {
			_ = c.requestStop(active, domain.SessionReasonTimeLimitReached)
		})
	}
	active.began(enc, c.now(), timer)
	c.state = domain.SessionStateRecording
	c.reason = domain.SessionReasonRecordingStarted
	c.encoding = &enc
	c.mu.Unlock()

	go c.runCapture(active, handle)

	c.logger.Info("recording started", "session", active.id, "mime", enc.MIMEType)
	c.events.SessionStateChanged(domain.SessionStateRecording, domain.SessionReasonRecordingStarted)
	return nil
}

func (c *SessionController) requestStop(active *session, reason domain.SessionStateReason) error {
	c.mu.Lock()
	if active == nil || c.current != active || c.state != domain.SessionStateRecording {
		c.mu.Unlock()
		return ErrNoActiveSession
	}
	c.state = domain.SessionStateStopping
	c.reason = reason
	c.mu.Unlock()

	active.stopTimer()
	c.logger.Info("stopping recording", "session", active.id, "reason", reason)
	c.events.SessionStateChanged(domain.SessionStateStopping, reason)

	if handle := active.captureHandle(); handle != nil {
		if err := handle.Stop(); err != nil {
			c.logger.Warn("capture stop failed", "session", active.id, "error", err)
			c.events.SessionError(domain.ErrorCodeCaptureStop, "failed to stop audio capture cleanly")
			// Releasing ends the stream, which still completes the stop.
			_ = active.release()
		}
	}
	return nil
}

func (c *SessionController) runCapture(active *session, handle ports.CaptureHandle) {
	err := pumpCaptureChunks(handle, c.cfg.ChunkSize, func(chunk []byte) {
		c.onChunk(active, chunk)
	})
	if err != nil {
		c.onCaptureError(active, err)
		return
	}
	c.onStopped(active)
}

func (c *SessionController) capturing(active *session) bool {
	return c.current == active &&
		(c.state == domain.SessionStateRecording || c.state == domain.SessionStateStopping)
}

func (c *SessionController) onChunk(active *session, chunk []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.capturing(active) {
		return
	}
	active.buffer.Append(chunk)
}

func (c *SessionController) onCaptureError(active *session, err error) {
	c.mu.Lock()
	capturing := c.capturing(active)
	c.mu.Unlock()
	if !capturing {
		return
	}
	c.fail(active, domain.ErrorCodeCaptureRuntime, domain.NewError(domain.ErrorCodeCaptureRuntime, "Recording error occurred", err))
}

func (c *SessionController) onStopped(active *session) {
	c.mu.Lock()
	if !c.capturing(active) {
		c.mu.Unlock()
		return
	}
	c.state = domain.SessionStateProcessing
	c.reason = domain.SessionReasonProcessing
	raw := active.buffer.Bytes()
	chunks := active.buffer.Len()
	c.mu.Unlock()

	active.stopTimer()
	handle := active.captureHandle()
	if err := active.release(); err != nil {
		c.logger.Warn("capture release failed", "session", active.id, "error", err)
	}
	c.events.SessionStateChanged(domain.SessionStateProcessing, domain.SessionReasonProcessing)

	enc, startedAt := active.recording()
	data, err := packagePayload(handle, enc, raw)
	if err != nil {
		c.fail(active, domain.ErrorCodeCaptureRuntime, err)
		return
	}

	payload := domain.AudioPayload{Encoding: enc, Data: data, Duration: c.now().Sub(startedAt)}
	c.logger.Info("uploading recording", "session", active.id, "chunks", chunks, "bytes", len(data), "mime", enc.MIMEType)

	report, err := c.client.Upload(active.ctx, payload)
	if err != nil {
		c.fail(active, domain.CodeOf(err, domain.ErrorCodeTransport), err)
		return
	}

	rendered, err := c.finalizer.Finalize(report)
	if err != nil {
		c.fail(active, domain.CodeOf(err, domain.ErrorCodeProtocol), err)
		return
	}

	c.mu.Lock()
	if c.current != active {
		c.mu.Unlock()
		return
	}
	c.current = nil
	c.state = domain.SessionStateIdle
	c.reason = domain.SessionReasonReportReady
	c.report = &report
	c.rendered = &rendered
	c.mu.Unlock()

	c.logger.Info("report ready", "session", active.id)
	c.events.ReportReady(rendered)
	c.events.SessionStateChanged(domain.SessionStateIdle, domain.SessionReasonReportReady)
	active.finish()
}

func (c *SessionController) fail(active *session, code domain.ErrorCode, err error) {
	if releaseErr := active.release(); releaseErr != nil {
		c.logger.Warn("capture release failed", "session", active.id, "error", releaseErr)
	}

	c.mu.Lock()
	if c.current != active {
		c.mu.Unlock()
		active.finish()
		return
	}
	reason := reasonForCode(code)
	c.current = nil
	c.state = domain.SessionStateError
	c.reason = reason
	c.lastErr = domain.MessageOf(err)
	c.mu.Unlock()

	c.logger.Warn("session failed", "session", active.id, "code", code, "error", err)
	c.events.SessionError(code, err.Error())
	c.events.SessionStateChanged(domain.SessionStateError, reason)
	active.finish()
}

func reasonForCode(code domain.ErrorCode) domain.SessionStateReason {
	switch code {
	case domain.ErrorCodeCapabilityUnavailable:
		return domain.SessionReasonCapabilityUnavailable
	case domain.ErrorCodePermissionDenied:
		return domain.SessionReasonPermissionDenied
	case domain.ErrorCodeCaptureRuntime:
		return domain.SessionReasonCaptureFailed
	case domain.ErrorCodeProtocol:
		return domain.SessionReasonResponseInvalid
	default:
		return domain.SessionReasonUploadFailed
	}
}
