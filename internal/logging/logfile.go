package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// logFilePrefix names the auto-generated files so the retention sweep only
// ever touches its own output.
const logFilePrefix = "gridpadctl-"

// LogConfig holds configuration for structured log output.
type LogConfig struct {
	Format        string // "json" (default) or "human"
	Level         string // "DEBUG", "INFO" (default), "WARN", "ERROR"
	Output        string // Path, "-" for stderr, "none" to disable
	Dir           string // Log directory (default: $GRIDPAD_DIR/logs)
	RetentionDays int    // Days to retain log files (default: 7)
}

// LogFile manages a log file lifecycle.
type LogFile struct {
	Path   string   // Full path to the log file (empty if output is disabled)
	file   *os.File // Opened file handle (nil if stderr or disabled)
	writer io.Writer
}

// NewLogFile creates a new log file based on the configuration.
//
// Output behavior:
//   - empty/omitted: Create auto-generated file in Dir
//   - "-": Use os.Stderr
//   - "none": Disable logging (io.Discard)
//   - path: Use specified path (absolute or relative to Dir)
func NewLogFile(cfg *LogConfig) (*LogFile, error) {
	lf := &LogFile{}

	switch strings.ToLower(cfg.Output) {
	case "none":
		lf.writer = io.Discard
		return lf, nil

	case "-":
		lf.writer = os.Stderr
		return lf, nil

	case "":
		filename := GenerateLogFilename(time.Now().UTC())
		lf.Path = filepath.Join(cfg.Dir, filename)

	default:
		if filepath.IsAbs(cfg.Output) {
			lf.Path = cfg.Output
		} else {
			lf.Path = filepath.Join(cfg.Dir, cfg.Output)
		}
	}

	dir := filepath.Dir(lf.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %q: %w", dir, err)
	}

	f, err := os.OpenFile(lf.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", lf.Path, err)
	}

	lf.file = f
	lf.writer = f

	return lf, nil
}

// Writer returns the io.Writer for log output.
func (lf *LogFile) Writer() io.Writer {
	return lf.writer
}

// Close closes the log file if it was opened.
func (lf *LogFile) Close() error {
	if lf.file != nil {
		return lf.file.Close()
	}
	return nil
}

// GenerateLogFilename generates a log filename with format:
// gridpadctl-YYYYMMDD-HHMMSS-sss.log
// where sss is milliseconds. Uses UTC timezone.
func GenerateLogFilename(t time.Time) string {
	return fmt.Sprintf("%s%s-%03d.log",
		logFilePrefix,
		t.Format("20060102-150405"),
		t.Nanosecond()/1_000_000)
}

// CleanupOldLogFiles removes log files older than retentionDays from the
// directory. Only files matching the auto-generated pattern are deleted.
func CleanupOldLogFiles(dir string, retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading log directory %q: %w", dir, err)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				continue
			}
		}
	}

	return nil
}
