package ktx2

import (
	"io"

	"github.com/ktxkit/ktxkit/internal/issue"
	"github.com/ktxkit/ktxkit/internal/validate"
	"github.com/ktxkit/ktxkit/pkg/types"
)

// Exit statuses shared by the library and the CLI.
const (
	ExitSuccess           = 0
	ExitUsageFailure      = 1
	ExitIOFailure         = 2
	ExitValidationFailure = 3
)

// Options configures one validation run.
type Options struct {
	// WarningsAsErrors delivers every warning as an error with the same
	// ID and counts it towards the exit status.
	WarningsAsErrors bool

	// Report receives every diagnostic, in detection order. It is called
	// synchronously from the validation pass. May be nil.
	Report func(types.ValidationReport)
}

// ValidateBytes validates a KTX2 file held in memory and returns the
// validation exit status. The buffer is only read, never retained.
func ValidateBytes(data []byte, opts Options) int {
	sink := issue.NewSink(opts.WarningsAsErrors, opts.Report)
	if err := validate.New(data, sink).Run(); err != nil {
		// Fatal diagnostics unwind here; the report is already delivered.
		return ExitValidationFailure
	}
	if sink.ErrorCount() > 0 {
		return ExitValidationFailure
	}
	return ExitSuccess
}

// ValidateReader buffers the remainder of r and validates it. A read
// failure is reported as a fatal I/O diagnostic and returns ExitIOFailure.
func ValidateReader(r io.Reader, opts Options) int {
	data, err := io.ReadAll(r)
	if err != nil {
		sink := issue.NewSink(opts.WarningsAsErrors, opts.Report)
		_ = sink.Fatal(issue.FileRead, err.Error())
		return ExitIOFailure
	}
	return ValidateBytes(data, opts)
}

// ValidateFile maps or reads the file at path and validates it. An open
// or read failure is reported as a fatal I/O diagnostic and returns
// ExitIOFailure.
func ValidateFile(path string, opts Options) int {
	data, cleanup, err := loadFile(path)
	if err != nil {
		sink := issue.NewSink(opts.WarningsAsErrors, opts.Report)
		_ = sink.Fatal(issue.FileOpen, path, err.Error())
		return ExitIOFailure
	}
	defer cleanup()
	return ValidateBytes(data, opts)
}
