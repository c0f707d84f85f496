package handler

// processLabResponse is the success payload for /process-lab.
type processLabResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
}

// errorResponse is the failure payload for /process-lab.
type errorResponse struct {
	Error string `json:"error"`
}

// feedbackResponse is the payload for /feedback, success or failure.
type feedbackResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
