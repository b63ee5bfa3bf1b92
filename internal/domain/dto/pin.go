package dto

// DeletePinResult reports a cascade delete. BlobFailures counts referenced
// blobs that could not be removed; the pin itself is gone regardless.
type DeletePinResult struct {
	Deleted      bool `json:"deleted"`
	BlobFailures int  `json:"blobFailures"`
}
