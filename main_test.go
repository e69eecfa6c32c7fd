package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/HugeFrog24/transcripto/config"
)

func TestNewProcessorMockMode(t *testing.T) {
	cfg := config.Default()
	processor := newProcessor(cfg)
	if !processor.UseMock {
		t.Error("Expected a mock processor")
	}
	if processor.Transcriber != nil || processor.Summarizer != nil {
		t.Error("Mock mode must not create API clients")
	}
}

func TestNewProcessorRealMode(t *testing.T) {
	cfg := config.Default()
	cfg.UseMock = false
	cfg.OpenAIAPIKey = "sk-test"

	processor := newProcessor(cfg)
	if processor.UseMock {
		t.Error("Expected mock mode to be off")
	}
	if processor.Transcriber == nil || processor.Summarizer == nil {
		t.Error("Expected both API collaborators to be wired")
	}
	if processor.TempDir != cfg.TempDir {
		t.Errorf("Expected temp dir '%s', got '%s'", cfg.TempDir, processor.TempDir)
	}
}

func TestTranscribeCommandMockMode(t *testing.T) {
	t.Setenv("TRANSCRIPTO_CONFIG", "")
	t.Setenv("USE_MOCK", "true")
	tempDir := t.TempDir()
	t.Setenv("TEMP_DIR", filepath.Join(tempDir, "work"))

	clip := filepath.Join(tempDir, "clip.mp3")
	if err := os.WriteFile(clip, []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to create clip: %v", err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"transcribe", clip})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}

	if !strings.Contains(out.String(), "Transcription: [mock] Received 5 bytes from clip.mp3.") {
		t.Errorf("Unexpected output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Summary: [mock]") {
		t.Errorf("Expected a mock summary in output:\n%s", out.String())
	}
}

func TestTranscribeCommandRejectsUnsupportedFile(t *testing.T) {
	t.Setenv("TRANSCRIPTO_CONFIG", "")
	t.Setenv("USE_MOCK", "true")
	t.Setenv("TEMP_DIR", t.TempDir())

	notes := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(notes, []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"transcribe", notes})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "Unsupported file format") {
		t.Errorf("Expected an unsupported format error, got %v", err)
	}
}

func TestInstallTracingRecordsSpans(t *testing.T) {
	cfg := config.Default()

	tp, err := installTracing(context.Background(), cfg)
	if err != nil {
		t.Fatalf("installTracing failed: %v", err)
	}
	defer tp.Shutdown(context.Background())

	if otel.GetTracerProvider() != tp {
		t.Error("Expected the provider to be installed globally")
	}
	_, span := otel.Tracer("test").Start(context.Background(), "upload")
	defer span.End()
	if !span.IsRecording() || !span.SpanContext().IsValid() {
		t.Error("Expected spans from the global provider to be recorded")
	}
}

func TestNewTracerProviderWithOTLPEndpoint(t *testing.T) {
	cfg := config.Default()
	cfg.OTLPEndpoint = "http://127.0.0.1:4318"

	tp, err := newTracerProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newTracerProvider failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	// Nothing was exported, so shutting down needs no collector.
	if err := tp.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}
