package report

import "fmt"

// TemplateReadError reports that the HTML template could not be read.
type TemplateReadError struct {
	Path string
	Err  error
}

func (e *TemplateReadError) Error() string {
	return fmt.Sprintf("failed to read template %s: %v", e.Path, e.Err)
}

func (e *TemplateReadError) Unwrap() error {
	return e.Err
}

// TemplateWriteError reports that the rendered visualization could not
// be written to its destination.
type TemplateWriteError struct {
	Path string
	Err  error
}

func (e *TemplateWriteError) Error() string {
	return fmt.Sprintf("failed to write visualization %s: %v", e.Path, e.Err)
}

func (e *TemplateWriteError) Unwrap() error {
	return e.Err
}
