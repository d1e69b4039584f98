package respond

import (
	"regexp"
)

var (
	// Anthropic keys must be masked before the generic OpenAI pattern runs,
	// since the latter would match their "sk-" prefix first.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)
)

// SanitizeError returns the error message with API credentials masked.
// Provider SDK errors can echo request headers back, so anything logged
// from that path goes through here first.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")

	return msg
}
