package converter

// Result holds the output of a conversion.
type Result struct {
	HTML     string    `json:"html"`
	Messages []Message `json:"messages,omitempty"`
}

// Severity classifies a message.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// MessageCode categorizes conversion messages.
type MessageCode string

const (
	CodeUnrecognizedElement MessageCode = "unrecognized_element"
	CodeUnrecognizedStyle   MessageCode = "unrecognized_style"
	CodeRewrittenURL        MessageCode = "rewritten_url"
	CodeHandlerFailed       MessageCode = "handler_failed"
	CodeAssetFailed         MessageCode = "asset_failed"
	CodeMissingReference    MessageCode = "missing_reference"
	CodeDroppedFeature      MessageCode = "dropped_feature"
)

// Message represents a non-fatal issue encountered during conversion.
type Message struct {
	Severity Severity    `json:"severity"`
	Code     MessageCode `json:"code"`
	Text     string      `json:"text"`
}

// Warnings returns only the warning-severity messages.
func (r Result) Warnings() []Message {
	return r.filter(SeverityWarning)
}

// Errors returns only the error-severity messages.
func (r Result) Errors() []Message {
	return r.filter(SeverityError)
}

func (r Result) filter(severity Severity) []Message {
	var out []Message
	for _, m := range r.Messages {
		if m.Severity == severity {
			out = append(out, m)
		}
	}
	return out
}
