package request

// SMSInboundRequest is the gateway webhook payload: the sender's number and
// the raw message text, nothing else.
type SMSInboundRequest struct {
	Phone string `json:"phone" binding:"required"`
	Text  string `json:"text" binding:"required"`
}
