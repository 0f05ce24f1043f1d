package output

import (
	"io"
	"os"
)

const reportDateLayout = "2006-01-02"

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

func truncateMessage(msg string, maxLen int) string {
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	return string(runes[:maxLen-3]) + "..."
}

// OpenOutput returns fallback when outputPath is empty, or a newly created
// file. The returned closer is nil when nothing needs closing.
func OpenOutput(outputPath string, fallback io.Writer) (io.Writer, io.Closer, error) {
	if outputPath == "" {
		return fallback, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
