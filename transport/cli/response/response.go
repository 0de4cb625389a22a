// Package response prints operation results for the menu.
package response

import (
	"fmt"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/shared/table"
	"io"
)

// Writer prints results on Out and statement failures on Err.
type Writer struct {
	Out io.Writer
	Err io.Writer
}

func New(out, errOut io.Writer) Writer {
	return Writer{
		Out: out,
		Err: errOut,
	}
}

// WithMessage prints a single line on the output stream.
func (w Writer) WithMessage(message string) {
	if _, err := fmt.Fprintln(w.Out, message); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithTable renders a result table on the output stream.
func (w Writer) WithTable(result table.Table) {
	if err := table.Render(w.Out, result); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithError reports a failed operation. Rejections and malformed input are answers for
// the user; statement and connection failures go to the error stream.
func (w Writer) WithError(err error) {
	switch failure.GetCode(err) {
	case failure.CodeRejected, failure.CodeInputFormat:
		w.WithMessage(err.Error())
	default:
		if _, writeErr := fmt.Fprintln(w.Err, err.Error()); writeErr != nil {
			logger.ErrorWithStack(writeErr)
		}
	}
}
