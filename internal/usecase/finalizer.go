package usecase

import (
	"errors"
	"fmt"

	"voicereport/internal/domain"
	"voicereport/internal/ports"
)

type reportFinalizer struct {
	renderer ports.ReportRenderer
}

func newReportFinalizer(renderer ports.ReportRenderer) reportFinalizer {
	return reportFinalizer{renderer: renderer}
}

func (f reportFinalizer) Finalize(report domain.Report) (domain.RenderedReport, error) {
	if f.renderer == nil {
		return domain.RenderedReport{}, errors.New("no report renderer configured")
	}
	rendered, err := f.renderer.Render(report.Text)
	if err != nil {
		return domain.RenderedReport{}, domain.NewError(domain.ErrorCodeProtocol, "Report could not be rendered", fmt.Errorf("render report: %w", err))
	}
	return rendered, nil
}

// packagePayload concatenates the buffered chunks and lets the handle wrap them
// in a container when it needs to.
func packagePayload(handle ports.CaptureHandle, enc domain.Encoding, raw []byte) ([]byte, error) {
	packager, ok := handle.(ports.PayloadPackager)
	if !ok {
		return raw, nil
	}
	data, err := packager.Package(enc, raw)
	if err != nil {
		return nil, domain.NewError(domain.ErrorCodeCaptureRuntime, "Recording could not be packaged", err)
	}
	return data, nil
}
