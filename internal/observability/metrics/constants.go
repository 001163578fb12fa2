package metrics

// Operation label values
const (
	OpLoad   = "load"
	OpCheck  = "check"
	OpRender = "render"
	OpExport = "export"
)

// Status label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Histogram bucket configuration.
const (
	// BucketStart100us starts histograms covering 0.1ms to ~400ms
	BucketStart100us = 0.0001
	// BucketStart1ms starts histograms covering 1ms to ~1s
	BucketStart1ms = 0.001

	BucketFactor2 = 2

	BucketCount10 = 10
	BucketCount12 = 12
)
