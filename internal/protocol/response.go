package protocol

// Response is the success envelope written back to the client after a
// command executes. SessionID is set only for NewSession.
type Response struct {
	SessionID string
	Value     any
}

// ToJSON renders the envelope. The "value" key is always present, even
// when the command produced nothing.
func (r *Response) ToJSON() map[string]any {
	data := map[string]any{"value": r.Value}
	if r.SessionID != "" {
		data["sessionId"] = r.SessionID
	}
	return data
}
