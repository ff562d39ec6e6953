package gateway

import (
	"regexp"
	"strings"
)

// Models keep opening with filler despite directive-level bans. The academic
// surfaces require output that starts at the title, so the first chunk of
// every synthesis gets scrubbed before display.
var (
	fillerRe   = regexp.MustCompile(`(?i)^(Sure|Certainly|Okay|Absolutely|Here is|I've synthesized|I can help|As a specialized).*?(\n|:|\.\s)`)
	preambleRe = regexp.MustCompile(`(?i)^Here is the (academic|technical|lab|thesis|requested).*?:\n`)
)

// CleanResponse strips conversational preamble so output begins with content.
// Applying it to already-clean text is a no-op.
func CleanResponse(text string) string {
	if text == "" {
		return ""
	}
	cleaned := fillerRe.ReplaceAllString(text, "")
	cleaned = preambleRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if strings.HasPrefix(strings.ToLower(cleaned), "here is the") {
		if _, rest, ok := strings.Cut(cleaned, "\n"); ok {
			cleaned = strings.TrimSpace(rest)
		} else {
			cleaned = ""
		}
	}
	return cleaned
}
