package httpserver

// StatusResponse is the JSON envelope for non-content endpoints
type StatusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Region  string `json:"region,omitempty"`
	Key     string `json:"key,omitempty"`
	Removed int    `json:"removed,omitempty"`
}
