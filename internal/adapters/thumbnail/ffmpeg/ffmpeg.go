package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/config"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"
)

// Extractor pulls a single preview frame out of video content by shelling out
// to ffprobe and ffmpeg. Both binaries must be on PATH or configured
// explicitly.
type Extractor struct {
	config config.ThumbnailConfig
	logger *slog.Logger
}

// NewExtractor creates an Extractor
func NewExtractor(cfg config.ThumbnailConfig, logger *slog.Logger) *Extractor {
	return &Extractor{config: cfg, logger: logger}
}

// Extract copies the video to a temp file, probes it for a decodable video
// stream and grabs one frame at the configured offset. The thumbnail is named
// after the video's stored name with a .jpg extension. The returned
// ReadCloser removes the temp directory when closed.
func (e *Extractor) Extract(ctx context.Context, video io.Reader, storedFileName string) (string, io.ReadCloser, error) {

	tempDir, err := os.MkdirTemp("", "thumbnail-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	keepDir := false
	defer func() {
		if !keepDir {
			os.RemoveAll(tempDir)
		}
	}()

	videoPath := filepath.Join(tempDir, "input"+filepath.Ext(storedFileName))
	f, err := os.Create(videoPath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp video file: %w", err)
	}
	_, err = io.Copy(f, video)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to copy video to temp file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	probe := exec.CommandContext(ctx, e.config.FFprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=codec_type",
		"-of", "csv=p=0",
		videoPath,
	)
	probeOut, err := probe.Output()
	if err != nil {
		return "", nil, fmt.Errorf("ffprobe failed: %w", err)
	}
	if strings.TrimSpace(string(probeOut)) == "" {
		return "", nil, domain.ErrNoVideoStream
	}

	framePath := filepath.Join(tempDir, "frame.jpg")
	seek := strconv.FormatFloat(e.config.SeekOffset.Seconds(), 'f', -1, 64)
	cmd := exec.CommandContext(ctx, e.config.FFmpegPath,
		"-ss", seek,
		"-i", videoPath,
		"-frames:v", "1",
		"-q:v", "2",
		"-y",
		framePath,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", nil, fmt.Errorf("ffmpeg frame extraction failed: %w: %s", err, tail(output))
	}

	frame, err := os.Open(framePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open extracted frame: %w", err)
	}

	base := strings.TrimSuffix(storedFileName, filepath.Ext(storedFileName))
	keepDir = true
	return base + ".jpg", &tempFrame{File: frame, dir: tempDir}, nil
}

// tail keeps error messages readable when ffmpeg dumps its full log.
func tail(output []byte) string {
	output = bytes.TrimSpace(output)
	if len(output) <= 300 {
		return string(output)
	}
	return "..." + string(output[len(output)-300:])
}

// tempFrame is the extracted frame plus its temp directory, removed on Close.
type tempFrame struct {
	*os.File
	dir string
}

func (t *tempFrame) Close() error {
	err := t.File.Close()
	os.RemoveAll(t.dir)
	return err
}
