package recommend

import "errors"

var (
	// ErrCollaboratorUnavailable is returned when the catalog failed or had nothing to offer
	ErrCollaboratorUnavailable = errors.New("catalog unavailable")
	// ErrExtraction is returned when raw catalog attributes are not attribute shaped
	ErrExtraction = errors.New("failed to extract features")
	// ErrModelUnavailable is returned when there is not enough data to build a model
	ErrModelUnavailable = errors.New("not enough data for model")
	// ErrUnknownTitle is returned when a title is not in the store
	ErrUnknownTitle = errors.New("title not in store")
)
