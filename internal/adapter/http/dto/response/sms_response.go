package response

// SMSInboundResponse is always returned with HTTP 200 so the gateway never
// retry-storms; application-level failure lives in Status/Code with a
// human-readable hint and a worked example.
type SMSInboundResponse struct {
	Status   string `json:"status"`
	ReportID string `json:"report_id,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
	Example  string `json:"example,omitempty"`
}

func SMSAccepted(reportID string) SMSInboundResponse {
	return SMSInboundResponse{Status: "ok", ReportID: reportID}
}

func SMSRejected(code, message, example string) SMSInboundResponse {
	return SMSInboundResponse{Status: "error", Code: code, Message: message, Example: example}
}
