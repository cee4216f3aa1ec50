package types

// ErrorResponse is written for requests rejected before reaching a service.
// It has the same shape as a failed operation output.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
