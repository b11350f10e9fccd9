package icns

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
)

// MockCompiler implements Compiler without touching iconutil
type MockCompiler struct {
	// Fail makes Compile return Diagnostics with an error
	Fail        bool
	Diagnostics string

	calls  []Call
	mu     sync.Mutex
	logger *slog.Logger
}

// Call records one Compile invocation
type Call struct {
	IconsetDir string
	OutputPath string
}

// NewMockCompiler creates a new mock compiler
func NewMockCompiler(logger *slog.Logger) *MockCompiler {
	return &MockCompiler{
		logger: logger.With("component", "mock"),
	}
}

// Name returns the compiler name
func (m *MockCompiler) Name() string {
	return "mock"
}

// Compile records the call and writes a placeholder output file on success
func (m *MockCompiler) Compile(ctx context.Context, iconsetDir, outputPath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, Call{IconsetDir: iconsetDir, OutputPath: outputPath})

	if m.Fail {
		m.logger.Debug("Compile failed (simulated)", "iconset", iconsetDir)
		return m.Diagnostics, errors.New("mock compiler failure")
	}

	if err := os.WriteFile(outputPath, []byte("icns"), 0644); err != nil {
		return "", err
	}
	m.logger.Debug("Compiled (simulated)", "iconset", iconsetDir, "output", outputPath)
	return "", nil
}

// Calls returns the recorded Compile invocations
func (m *MockCompiler) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}
