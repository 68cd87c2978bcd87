package messages

// Record encodings stored by the archive
const (
	// EncodingJSONZstd is JSON compressed with zstd
	EncodingJSONZstd = "json+zstd"
)
