package models

import "encoding/json"

// RecordType identifies what kind of field capture an OfflineRecord holds.
// The set is closed; AddRecord rejects anything else.
const (
	DrillHole         = "drill-hole"
	GeologicalFeature = "geological-feature"
	Photogrammetry    = "photogrammetry"
	GISLayer          = "gis-layer"
	Lidar             = "lidar"
)

// KnownRecordTypes lists every valid RecordType value.
var KnownRecordTypes = []string{
	DrillHole,
	GeologicalFeature,
	Photogrammetry,
	GISLayer,
	Lidar,
}

// OfflineRecord is one unit of offline-captured exploration data awaiting
// upload. Records are immutable once created: a sync only ever flips Synced,
// and SizeBytes is computed from the serialized payload exactly once.
type OfflineRecord struct {
	// ID is a UUIDv7 assigned at creation time.
	ID string `json:"id"`

	// Type is one of the KnownRecordTypes values.
	Type string `json:"type"`

	// Payload is the captured data itself, opaque to the sync agent.
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the local creation time in epoch milliseconds.
	CreatedAt int64 `json:"created_at"`

	// Synced is false until the remote data API has accepted the record.
	Synced bool `json:"synced"`

	// SizeBytes is the byte length of the serialized payload.
	SizeBytes int64 `json:"size_bytes"`
}
