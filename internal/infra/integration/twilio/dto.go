package twilio

type SendMessageInput struct {
	To   string // E.164, e.g. "+15555550123"
	Body string
}

// SendResult is returned verbatim to API callers of the manual send
// endpoint, so the field names are part of the HTTP contract.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type messageResponse struct {
	Sid    string `json:"sid"`
	Status string `json:"status"`
}
