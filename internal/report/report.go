// Package report writes the brief document artifact.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"dailybrief/internal/news"
)

// Write emits the document as pretty-printed UTF-8 JSON at path. The run
// either aborts before reaching this point or writes one complete document;
// there is no partial output.
func Write(path string, doc news.Brief) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to marshal brief: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write brief file: %w", err)
	}
	return nil
}
