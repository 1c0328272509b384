package ffmpeg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

const (
	envFFmpegPath  = "CAPTIONCUT_FFMPEG_PATH"
	envFFprobePath = "CAPTIONCUT_FFPROBE_PATH"
)

// ErrNotFound is returned when a binary is neither configured nor on PATH.
var ErrNotFound = errors.New("ffmpeg binaries not found")

type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

var (
	mu         sync.Mutex
	configured BinaryPaths
	ensureOnce sync.Once
	ensureErr  error
	ensurePath BinaryPaths
)

// Configure sets explicit binary locations, usually from the config file.
// It must be called before the first lookup to take effect.
func Configure(paths BinaryPaths) {
	mu.Lock()
	defer mu.Unlock()
	configured = paths
}

func Ensure() (BinaryPaths, error) {
	ensureOnce.Do(func() {
		mu.Lock()
		explicit := configured
		mu.Unlock()
		ensurePath, ensureErr = resolve(explicit, exec.LookPath)
	})
	return ensurePath, ensureErr
}

func FFmpegPath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFmpeg, nil
}

func FFprobePath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFprobe, nil
}

// resolve picks each binary from the explicit paths, then the environment,
// then PATH.
func resolve(explicit BinaryPaths, lookPath func(string) (string, error)) (BinaryPaths, error) {
	paths := explicit
	if paths.FFmpeg == "" {
		paths.FFmpeg = os.Getenv(envFFmpegPath)
	}
	if paths.FFprobe == "" {
		paths.FFprobe = os.Getenv(envFFprobePath)
	}

	if paths.FFmpeg == "" {
		if found, err := lookPath("ffmpeg"); err == nil {
			paths.FFmpeg = found
		}
	}
	if paths.FFprobe == "" {
		if found, err := lookPath("ffprobe"); err == nil {
			paths.FFprobe = found
		}
	}

	if paths.FFmpeg == "" || paths.FFprobe == "" {
		return BinaryPaths{}, fmt.Errorf(
			"%w: install ffmpeg or set %s and %s",
			ErrNotFound,
			envFFmpegPath,
			envFFprobePath,
		)
	}

	for _, p := range []string{paths.FFmpeg, paths.FFprobe} {
		if !fileExists(p) {
			return BinaryPaths{}, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
	}

	return paths, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
