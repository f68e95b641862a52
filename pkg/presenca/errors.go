package presenca

import "errors"

// ErrEmptyExport is returned when an export is requested for zero signatures.
var ErrEmptyExport = errors.New("nothing to export")
