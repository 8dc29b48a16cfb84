package analysis

import "errors"

// Error kinds surfaced by the pipeline. ErrNoCandidates is a terminal
// "nothing to report" outcome rather than a fault; every other kind aborts the
// request. There is no partial-result mode and no retry at any stage.
var (
	ErrExtraction           = errors.New("strategy extraction failed")
	ErrDirectoryUnavailable = errors.New("protocol directory unavailable")
	ErrNoCandidates         = errors.New("no related protocols found")
	ErrSynthesis            = errors.New("protocol details synthesis failed")
	ErrComposition          = errors.New("report composition failed")
)
