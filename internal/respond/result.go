package respond

import (
	"encoding/json"
	"fmt"
)

// Result is the JSON payload returned to tool callers. Success carries
// message/response/source/model; errors carry status "error" and a
// human-readable message.
type Result struct {
	Status   string `json:"status,omitempty"`
	Message  string `json:"message"`
	Response string `json:"response,omitempty"`
	Source   string `json:"source,omitempty"`
	Model    string `json:"model,omitempty"`
}

// IsError reports whether the result is an error payload.
func (r Result) IsError() bool {
	return r.Status == "error"
}

// JSON renders the result as the indented JSON string the tool surface
// returns. Callers always receive well-formed JSON, never a raw fault.
func (r Result) JSON() string {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"status": "error", "message": %q}`, err.Error())
	}
	return string(b)
}

func errorResult(msg string) Result {
	return Result{Status: "error", Message: msg}
}
