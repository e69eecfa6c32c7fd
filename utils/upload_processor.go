package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tempFilePrefix = "transcripto-"

	mockSummary = "[mock] Summary: Demo mode is enabled (no external API calls)."
)

// Extensions accepted by the transcription API. Matching is a case-insensitive
// substring test on the whole filename, not a suffix check.
var supportedExtensions = []string{".webm", ".wav", ".mp3", ".m4a", ".ogg", ".mp4", ".mov"}

const tracerName = "github.com/HugeFrog24/transcripto/utils"

// tracer is looked up on every call so a provider installed after package
// initialization is picked up.
func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// TranscriptionResult is the body returned for a processed upload. Outside
// mock mode at most one of Summary and SummaryError is set.
type TranscriptionResult struct {
	Transcript   string  `json:"transcript"`
	Summary      *string `json:"summary"`
	SummaryError *string `json:"summary_error"`
}

// UploadProcessor runs one uploaded clip through transcription and
// summarization. It keeps no state between calls and is safe for concurrent use.
type UploadProcessor struct {
	// UseMock replaces both external calls with placeholder output.
	UseMock bool
	// TempDir receives the clip while it is being transcribed. Empty means os.TempDir().
	TempDir     string
	Transcriber AudioTranscriber
	Summarizer  TextSummarizer
}

// IsSupportedFilename reports whether filename mentions one of the accepted
// container extensions anywhere in its lowercased form.
func IsSupportedFilename(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range supportedExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

// ProcessUpload validates filename, buffers body to a temporary file, and
// returns the transcript with its summary. The temporary file is removed before
// ProcessUpload returns, whatever the outcome.
//
// A transcription failure or an empty transcript fails the whole call. A
// summarization failure does not: it is reported in SummaryError instead.
func (p *UploadProcessor) ProcessUpload(ctx context.Context, filename string, body io.Reader) (result *TranscriptionResult, err error) {
	if !IsSupportedFilename(filename) {
		return nil, ErrUnsupportedFormat
	}

	ctx, span := tracer().Start(ctx, "ProcessUpload", trace.WithAttributes(
		attribute.String("upload.filename", filename),
		attribute.Bool("upload.mock", p.UseMock),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tmpPath, size, err := p.writeTempFile(filename, body)
	if err != nil {
		return nil, err
	}
	defer removeTempFile(tmpPath)
	span.SetAttributes(attribute.Int64("upload.bytes", size))

	if p.UseMock {
		summary := mockSummary
		return &TranscriptionResult{
			Transcript: mockTranscript(size, filename),
			Summary:    &summary,
		}, nil
	}

	transcript, err := p.transcribe(ctx, tmpPath)
	if err != nil {
		return nil, err
	}

	result = &TranscriptionResult{Transcript: transcript}
	summary, err := p.summarize(ctx, transcript)
	if err != nil {
		log.Printf("Summary failed for '%s': %v", filename, err)
		msg := summaryFailure(err)
		result.SummaryError = &msg
		return result, nil
	}
	result.Summary = &summary
	return result, nil
}

func (p *UploadProcessor) transcribe(ctx context.Context, audioFile string) (string, error) {
	ctx, span := tracer().Start(ctx, "TranscribeAudio")
	defer span.End()

	transcript, err := p.Transcriber.TranscribeAudio(ctx, audioFile)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", &TranscriptionError{Err: err}
	}
	if strings.TrimSpace(transcript) == "" {
		span.SetStatus(codes.Error, ErrEmptyTranscript.Error())
		return "", ErrEmptyTranscript
	}
	span.SetAttributes(attribute.Int("transcript.length", len(transcript)))
	return transcript, nil
}

func (p *UploadProcessor) summarize(ctx context.Context, transcript string) (string, error) {
	ctx, span := tracer().Start(ctx, "SummarizeText")
	defer span.End()

	summary, err := p.Summarizer.SummarizeText(ctx, transcript)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return summary, nil
}

// writeTempFile copies body into a uniquely named file whose name ends with
// the original filename, so the extension survives for codec detection.
func (p *UploadProcessor) writeTempFile(filename string, body io.Reader) (string, int64, error) {
	dir := p.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", 0, fmt.Errorf("failed to create temp directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePrefix+"*"+tempSuffix(filename))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	size, err := io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		removeTempFile(tmp.Name())
		return "", 0, fmt.Errorf("failed to write upload: %w", err)
	}
	return tmp.Name(), size, nil
}

// tempSuffix strips anything from filename that os.CreateTemp would reject or
// misread in a pattern.
func tempSuffix(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	return strings.ReplaceAll(base, "*", "")
}

// Cleanup is best-effort; failures are logged and never reach the caller.
func removeTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove temp file %s: %v", path, err)
	}
}

func mockTranscript(size int64, filename string) string {
	return fmt.Sprintf("[mock] Received %d bytes from %s.", size, filename)
}
