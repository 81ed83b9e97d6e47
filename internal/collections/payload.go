package collections

import (
	"encoding/json"
	"fmt"
)

// sourcePayload is the serialized blob the browser stores per item. It
// carries more metadata than this, but only the URL matters for export.
type sourcePayload struct {
	URL string `json:"url"`
}

// extractURL decodes an item's source payload and returns the embedded URL.
// A missing payload yields an empty URL without error; a payload that is not
// valid JSON is an error. Callers skip the item in both cases.
func extractURL(source []byte) (string, error) {
	if len(source) == 0 {
		return "", nil
	}

	var payload sourcePayload
	if err := json.Unmarshal(source, &payload); err != nil {
		return "", fmt.Errorf("failed to parse source payload: %w", err)
	}

	return payload.URL, nil
}
