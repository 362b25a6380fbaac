package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"voicereport/internal/domain"
)

// promptDocumentRequest is a test hook for replacing the name form in tests.
// It reports false when the user declines or the input is not a terminal.
var promptDocumentRequest = defaultPromptDocumentRequest

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func defaultPromptDocumentRequest(in io.Reader, out io.Writer, req domain.DocumentRequest) (domain.DocumentRequest, bool, error) {
	if !isTerminal(in) {
		return req, false, nil
	}

	generate := true
	patient := req.PatientName
	doctor := req.DoctorName

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate a PDF from this report?").
				Affirmative("Yes").
				Negative("No").
				Value(&generate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Patient name").
				Description("Optional").
				Value(&patient),
			huh.NewInput().
				Title("Doctor name").
				Description("Optional").
				Value(&doctor),
		).WithHideFunc(func() bool { return !generate }),
	).WithInput(in).WithOutput(out).Run()
	if err != nil {
		return req, false, fmt.Errorf("document form failed: %w", err)
	}
	if !generate {
		return req, false, nil
	}
	return domain.DocumentRequest{
		PatientName: strings.TrimSpace(patient),
		DoctorName:  strings.TrimSpace(doctor),
	}, true, nil
}

type lineResult struct {
	line string
	err  error
}

// lineInput reads one line at a time from in. At most one read is in flight.
type lineInput struct {
	reader   *bufio.Reader
	inflight chan lineResult
}

func newLineInput(in io.Reader) *lineInput {
	return &lineInput{reader: bufio.NewReader(in)}
}

// next starts a read unless one is already pending and returns its result channel.
// Callers that receive from it must call received.
func (l *lineInput) next() <-chan lineResult {
	if l.inflight != nil {
		return l.inflight
	}
	ch := make(chan lineResult, 1)
	l.inflight = ch
	go func() {
		line, err := l.reader.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		ch <- lineResult{line: strings.TrimRight(line, "\r\n"), err: err}
	}()
	return ch
}

func (l *lineInput) received() {
	l.inflight = nil
}

func (l *lineInput) pending() bool {
	return l.inflight != nil
}

func (l *lineInput) ReadLine(ctx context.Context) (string, error) {
	select {
	case res := <-l.next():
		l.received()
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// promptDocumentLines asks for the document fields one line at a time. It is used
// while a line read is still pending on in, where a second reader would steal input.
func promptDocumentLines(ctx context.Context, input *lineInput, out io.Writer, req domain.DocumentRequest) (domain.DocumentRequest, bool, error) {
	fmt.Fprint(out, "Generate a PDF from this report? [y/N]: ")
	answer, err := input.ReadLine(ctx)
	if err != nil {
		fmt.Fprintln(out)
		if errors.Is(err, io.EOF) {
			return req, false, nil
		}
		return req, false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
	default:
		return req, false, nil
	}

	patient, err := promptLine(ctx, input, out, "Patient name (optional)", req.PatientName)
	if err != nil {
		return req, false, err
	}
	doctor, err := promptLine(ctx, input, out, "Doctor name (optional)", req.DoctorName)
	if err != nil {
		return req, false, err
	}
	return domain.DocumentRequest{PatientName: patient, DoctorName: doctor}, true, nil
}

// promptLine keeps current when the answer is blank or input has ended.
func promptLine(ctx context.Context, input *lineInput, out io.Writer, title, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(out, "%s [%s]: ", title, current)
	} else {
		fmt.Fprintf(out, "%s: ", title)
	}
	answer, err := input.ReadLine(ctx)
	if err != nil {
		fmt.Fprintln(out)
		if errors.Is(err, io.EOF) {
			return current, nil
		}
		return "", err
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return current, nil
	}
	return answer, nil
}
