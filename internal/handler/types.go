package handler

// AddEntryRequest represents the request body for a problem submission
type AddEntryRequest struct {
	Problem string `json:"problem"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// StatusResponse is the envelope returned by the write endpoints
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// EntryResponse represents a single entry in the public listing.
// Email and uuid are deliberately absent.
type EntryResponse struct {
	ID        uint   `json:"id"`
	Problem   string `json:"problem"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
