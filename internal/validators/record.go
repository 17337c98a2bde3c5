package validators

import "github.com/geovision-ai/miner-sync/models"

// RecordValidator checks new-record input before the lifecycle manager
// accepts it.
type RecordValidator interface {
	// ValidateNewRecord returns nil when recordType belongs to the known
	// set and a payload is present.
	ValidateNewRecord(recordType string, payload any) error
}

type recordValidator struct {
	known map[string]struct{}
}

func NewRecordValidator() RecordValidator {
	known := make(map[string]struct{}, len(models.KnownRecordTypes))
	for _, t := range models.KnownRecordTypes {
		known[t] = struct{}{}
	}

	return &recordValidator{known: known}
}

func (v *recordValidator) ValidateNewRecord(recordType string, payload any) error {
	if _, ok := v.known[recordType]; !ok {
		return ErrUnknownRecordType
	}
	if payload == nil {
		return ErrEmptyPayload
	}

	return nil
}
