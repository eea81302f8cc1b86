// errors.go defines the error taxonomy for the analysis pipeline.
//
// Go Pattern: Sentinel errors + errors.Is. Each failure class gets one
// sentinel; lower layers wrap it with detail via fmt.Errorf("%w: ...")
// and the HTTP layer switches on errors.Is to pick a status code.
package pipeline

import "errors"

var (
	// ErrUnsupportedFormat means the declared media type is not one we
	// accept. User error — nothing was written to scratch storage.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailure means the input could not be parsed or
	// decoded at all (corrupt PDF, undecodable image). User error; the
	// caller should surface a specific message, not retry.
	ErrExtractionFailure = errors.New("text extraction failed")

	// ErrNoReadableText means extraction succeeded but the document
	// yielded too little text to analyze (a scanned PDF, for example).
	ErrNoReadableText = errors.New("no readable text found in the document")
)
