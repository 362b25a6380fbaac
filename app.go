package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"voicereport/internal/bootstrap"
	"voicereport/internal/config"
	"voicereport/internal/domain"
	"voicereport/internal/logging"
	"voicereport/internal/usecase"
)

const (
	eventSession  = "voicereport:session"
	eventReport   = "voicereport:report"
	eventDocument = "voicereport:document"
	eventError    = "voicereport:error"
)

// App is the Wails application root.
type App struct {
	ctx context.Context

	controller *usecase.SessionController
	cfg        config.Config
	logger     *slog.Logger
	bootErr    error

	emit       func(ctx context.Context, name string, data ...any)
	browseOpen func(ctx context.Context, url string)
}

func NewApp() *App {
	return &App{
		logger:     slog.Default(),
		emit:       runtime.EventsEmit,
		browseOpen: runtime.BrowserOpenURL,
	}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	cfg, err := config.Load()
	if err != nil {
		a.bootErr = err
		a.SessionError(domain.ErrorCodeStartup, err.Error())
		return
	}
	a.logger = logging.New(os.Stderr, cfg.Log.Level, cfg.Log.JSON)

	services, err := bootstrap.BuildWithConfig(cfg, a, a.logger)
	if err != nil {
		a.bootErr = err
		a.SessionError(domain.ErrorCodeStartup, err.Error())
		return
	}

	a.cfg = services.Config
	a.controller = services.Controller
	a.SessionStateChanged(domain.SessionStateIdle, domain.SessionReasonReady)
}

func (a *App) shutdown(_ context.Context) {
	if a.controller == nil {
		return
	}
	if err := a.controller.Close(); err != nil {
		a.logger.Warn("release capture on shutdown", "error", err)
	}
}

// Toggle starts recording when idle and stops it while recording.
func (a *App) Toggle() (domain.Status, error) {
	if err := a.requireReady(); err != nil {
		return a.GetStatus(), err
	}
	status, err := a.controller.Toggle(a.ctx)
	if errors.Is(err, usecase.ErrBusy) || errors.Is(err, usecase.ErrNoActiveSession) {
		return status, nil
	}
	return status, err
}

// Cancel stops an in-progress recording from the Escape key. Outside a recording it does nothing.
func (a *App) Cancel() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	if err := a.controller.Cancel(); err != nil && !errors.Is(err, usecase.ErrNoActiveSession) {
		return err
	}
	return nil
}

// GenerateDocument requests a PDF for the last report. Blank names are allowed.
func (a *App) GenerateDocument(patientName string, doctorName string) (domain.DocumentLink, error) {
	if err := a.requireReady(); err != nil {
		return domain.DocumentLink{}, err
	}
	link, err := a.controller.GenerateDocument(a.ctx, domain.DocumentRequest{
		PatientName: patientName,
		DoctorName:  doctorName,
	})
	if errors.Is(err, usecase.ErrNoReport) {
		a.SessionError(domain.ErrorCodeProtocol, "No report available. Record a session first.")
	}
	return link, err
}

// OpenDocument opens the last generated document in the system browser.
func (a *App) OpenDocument() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	status := a.controller.Status()
	if status.Document == nil || status.Document.URL == "" {
		return fmt.Errorf("no document has been generated")
	}
	a.browseOpen(a.ctx, status.Document.URL)
	return nil
}

// GetStatus returns the current session status.
func (a *App) GetStatus() domain.Status {
	if a.controller == nil {
		if a.bootErr != nil {
			return domain.Status{
				State:   domain.SessionStateError,
				Active:  false,
				Message: a.bootErr.Error(),
				Control: domain.Control{Enabled: false, Label: domain.LabelStart, Action: domain.ControlActionNone},
				Error:   a.bootErr.Error(),
			}
		}
		return domain.Status{State: domain.SessionStateIdle, Active: false, Control: domain.ControlFor(domain.SessionStateIdle, "")}
	}
	return a.controller.Status()
}

// GetRuntimeInfo returns non-sensitive config for the UI.
func (a *App) GetRuntimeInfo() map[string]string {
	if a.bootErr != nil {
		return map[string]string{"error": a.bootErr.Error()}
	}

	maxDuration := "manual"
	if a.cfg.Session.MaxDuration > 0 {
		maxDuration = a.cfg.Session.MaxDuration.String()
	}
	return map[string]string{
		"server":           a.cfg.Server.BaseURL,
		"requestTimeout":   a.cfg.Server.RequestTimeout.String(),
		"audioInput":       a.cfg.Audio.InputDevice,
		"audioInputFormat": a.cfg.Audio.InputFormat,
		"maxDuration":      maxDuration,
		"reportFormat":     a.cfg.Report.Format,
		"configFile":       a.cfg.Path,
	}
}

func (a *App) requireReady() error {
	if a.bootErr != nil {
		return a.bootErr
	}
	if a.controller == nil {
		return fmt.Errorf("application is not initialized")
	}
	return nil
}

// SessionStateChanged emits session lifecycle updates to the frontend.
func (a *App) SessionStateChanged(state domain.SessionState, reason domain.SessionStateReason) {
	if a.ctx == nil {
		return
	}
	payload := map[string]any{
		"state":   string(state),
		"reason":  string(reason),
		"message": reason.Message(),
	}
	if a.controller != nil {
		payload["status"] = a.controller.Status()
	}
	a.emit(a.ctx, eventSession, payload)
}

// ReportReady emits the rendered report.
func (a *App) ReportReady(report domain.RenderedReport) {
	if a.ctx == nil {
		return
	}
	a.emit(a.ctx, eventReport, report)
}

// DocumentReady emits the download reference for a generated document.
func (a *App) DocumentReady(link domain.DocumentLink) {
	if a.ctx == nil {
		return
	}
	a.emit(a.ctx, eventDocument, link)
}

// SessionError emits backend errors to the UI.
func (a *App) SessionError(code domain.ErrorCode, detail string) {
	if a.ctx == nil {
		return
	}
	a.emit(a.ctx, eventError, map[string]string{
		"code":    string(code),
		"message": errorMessage(code, detail),
		"detail":  detail,
	})
}

func errorMessage(code domain.ErrorCode, detail string) string {
	if message := code.Message(); message != "" {
		return message
	}
	if detail == "" {
		return "Unknown error"
	}
	return detail
}
