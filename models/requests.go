package models

// UploadRequest is the batch contract sent to the remote sync endpoint.
// The batch is all-or-nothing: the server either accepts every record or the
// whole attempt fails and nothing is marked synced locally.
type UploadRequest struct {
	Records []OfflineRecord `json:"records"`

	// Length duplicates len(Records) so the server can reject truncated
	// bodies early.
	Length int `json:"length"`

	// Hash is an HMAC-SHA256 signature over the serialized records,
	// computed with the shared transport hash key. Empty when no key is
	// configured.
	Hash string `json:"hash,omitempty"`
}

// AddRecordRequest is the local control-surface body for creating a record.
type AddRecordRequest struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// AddRecordResponse returns the generated id of a newly created record.
type AddRecordResponse struct {
	ID string `json:"id"`
}

// RemoveRecordsRequest is the local control-surface body for bulk deletion.
type RemoveRecordsRequest struct {
	IDs []string `json:"ids"`
}
