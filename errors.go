package assimpexport

import (
	"fmt"

	"github.com/pkg/errors"
)

// NoErrorString stands in for an empty collaborator error string.
const NoErrorString = "no error string available"

// ErrorKind classifies why a conversion failed.
type ErrorKind int

const (
	// ImportFailure means the importer returned no scene.
	ImportFailure ErrorKind = iota + 1
	// IncompleteScene means the scene was flagged incomplete.
	IncompleteScene
	// MissingRootNode means the scene has no root node.
	MissingRootNode
	// ExportFailure means the export, or the check of its output, failed.
	ExportFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ImportFailure:
		return "import failure"
	case IncompleteScene:
		return "incomplete scene"
	case MissingRootNode:
		return "missing root node"
	case ExportFailure:
		return "export failure"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Stages a conversion can fail in.
const (
	StageImport = "import"
	StageExport = "export"
	StageVerify = "verify"
)

// ConvertError is returned by Service.Run.
type ConvertError struct {
	Kind  ErrorKind
	Stage string
	// Path is the input file for import stage errors, the output otherwise.
	Path    string
	Message string
	// Code is the exporter result, only set for StageExport.
	Code  Return
	cause error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Message)
}

func (e *ConvertError) Unwrap() error { return e.cause }

// Cause lets errors.Cause reach the underlying error.
func (e *ConvertError) Cause() error { return e.cause }

// IsKind reports whether err is a *ConvertError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *ConvertError
	return errors.As(err, &ce) && ce.Kind == kind
}
