package model

// StatusMessage is the response shape for destructive operations.
type StatusMessage struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
