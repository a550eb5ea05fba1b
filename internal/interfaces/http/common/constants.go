package common

const (
	// MaxPhotoUploadBytes limits the fitting photo upload size.
	MaxPhotoUploadBytes = 10 << 20
	// MaxJSONRequestBody limits JSON request bodies for session endpoints.
	MaxJSONRequestBody = 1 << 20
)
