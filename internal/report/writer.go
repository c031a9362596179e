package report

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"

	"discsub/internal/config"
	"discsub/internal/fileutil"
	"discsub/internal/logging"
	sub "discsub/internal/submission"
)

const (
	SubmissionInfoName = "!submissionInfo.txt"
	SubmissionJSONName = "!submissionInfo.json"
	SubmissionGzipName = "!submissionInfo.json.gz"
	ProtectionInfoName = "!protectionInfo.txt"
	lockName           = ".discsub.lock"
)

// ErrOutputLocked reports another writer holding the output directory.
var ErrOutputLocked = errors.New("output directory is locked by another process")

// Paths lists the files produced by a write.
type Paths struct {
	Text       string
	JSON       string
	Protection string
}

// Writer produces the submission artifacts in one directory.
type Writer struct {
	dir              string
	includeArtifacts bool
	opts             Options
	logger           *slog.Logger
}

// NewWriter creates a writer for dir. includeArtifacts switches the JSON
// output to its gzip form.
func NewWriter(dir string, includeArtifacts bool, opts Options, logger *slog.Logger) *Writer {
	return &Writer{
		dir:              dir,
		includeArtifacts: includeArtifacts,
		opts:             opts,
		logger:           logging.NewComponentLogger(logger, "report"),
	}
}

// NewWriterFromConfig builds a writer from the [submission] section.
func NewWriterFromConfig(cfg *config.Config, logger *slog.Logger) *Writer {
	return NewWriter(cfg.Submission.OutputDir, cfg.Submission.IncludeArtifacts,
		Options{RedumpCompatibility: cfg.Submission.RedumpCompatibility}, logger)
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Write renders rec and writes the text report, the JSON record and, when
// protections were recorded, the protection listing. The directory is locked
// for the duration so concurrent runs cannot interleave files.
func (w *Writer) Write(rec *sub.Record) (Paths, error) {
	if rec == nil {
		return Paths{}, errors.New("record is nil")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}

	lock := flock.New(filepath.Join(w.dir, lockName))
	ok, err := lock.TryLock()
	if err != nil {
		return Paths{}, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return Paths{}, ErrOutputLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			w.logger.Warn("failed to release output lock", logging.Error(err))
		}
	}()

	var paths Paths
	text := strings.Join(Format(rec, w.opts), "\n") + "\n"
	paths.Text = filepath.Join(w.dir, SubmissionInfoName)
	if err := fileutil.WriteFileAtomic(paths.Text, []byte(text), 0o644); err != nil {
		return Paths{}, fmt.Errorf("write %s: %w", SubmissionInfoName, err)
	}

	payload, err := MarshalJSON(rec)
	if err != nil {
		return Paths{}, err
	}
	if w.includeArtifacts {
		paths.JSON = filepath.Join(w.dir, SubmissionGzipName)
		err = fileutil.WriteAtomic(paths.JSON, 0o644, func(dst io.Writer) error {
			zw := gzip.NewWriter(dst)
			zw.Name = SubmissionJSONName
			if _, err := zw.Write(payload); err != nil {
				return err
			}
			return zw.Close()
		})
	} else {
		paths.JSON = filepath.Join(w.dir, SubmissionJSONName)
		err = fileutil.WriteFileAtomic(paths.JSON, payload, 0o644)
	}
	if err != nil {
		return Paths{}, fmt.Errorf("write %s: %w", filepath.Base(paths.JSON), err)
	}

	if protection := ProtectionLines(rec.CopyProtection.FullProtections); len(protection) > 0 {
		paths.Protection = filepath.Join(w.dir, ProtectionInfoName)
		data := []byte(strings.Join(protection, "\n") + "\n")
		if err := fileutil.WriteFileAtomic(paths.Protection, data, 0o644); err != nil {
			return Paths{}, fmt.Errorf("write %s: %w", ProtectionInfoName, err)
		}
	}

	w.logger.Info("submission artifacts written",
		logging.String("dir", w.dir),
		logging.Bool("gzip", w.includeArtifacts),
		logging.Bool("protection_info", paths.Protection != ""),
	)
	return paths, nil
}

// MarshalJSON serializes rec as indented JSON.
func MarshalJSON(rec *sub.Record) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return data, nil
}

// ProtectionLines renders "path: a, b" lines sorted by path.
func ProtectionLines(protections map[string][]string) []string {
	if len(protections) == 0 {
		return nil
	}
	keys := make([]string, 0, len(protections))
	for key := range protections {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, key+": "+strings.Join(protections[key], ", "))
	}
	return out
}
