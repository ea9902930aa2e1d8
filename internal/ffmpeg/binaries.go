// Package ffmpeg locates the ffmpeg and ffprobe executables.
package ffmpeg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

var ErrNotFound = errors.New("executable not found")

type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

// Resolve fills in each empty path of configured from PATH. Configured
// paths, which come from the config file or SUBRIPTEXT_* environment, must
// name an existing file.
func Resolve(configured BinaryPaths) (BinaryPaths, error) {
	ffmpegPath, err := resolveOne("ffmpeg", configured.FFmpeg)
	if err != nil {
		return BinaryPaths{}, err
	}
	ffprobePath, err := resolveOne("ffprobe", configured.FFprobe)
	if err != nil {
		return BinaryPaths{}, err
	}
	return BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}, nil
}

func resolveOne(name, configured string) (string, error) {
	if configured == "" {
		found, err := exec.LookPath(name)
		if err != nil {
			return "", fmt.Errorf("%s: %w in PATH (set %s_path in the config)", name, ErrNotFound, name)
		}
		return found, nil
	}
	if !fileExists(configured) {
		return "", fmt.Errorf("%s: %w at %s", name, ErrNotFound, configured)
	}
	return configured, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
