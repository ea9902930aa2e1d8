package subtitle

import (
	"fmt"
	"io"
	"os"

	"github.com/dimchansky/utfbom"
	"go.uber.org/zap"
)

// Load reads the whole file at path, skips a UTF-8 byte order mark and
// parses it, reporting malformed interval lines to logger.
func Load(path string, logger *zap.SugaredLogger) (*Document, []*LineError, error) {
	content, err := ReadText(path)
	if err != nil {
		return nil, nil, err
	}
	doc, issues := NewParser(logger).Parse(content)
	return doc, issues, nil
}

// ReadText returns the file contents as text without a leading BOM.
func ReadText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(utfbom.SkipOnly(file))
	if err != nil {
		return "", fmt.Errorf("error reading SRT file: %w", err)
	}
	return string(data), nil
}
