package icns

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

const iconutilBinary = "iconutil"

// IconutilCompiler shells out to the macOS iconutil tool
type IconutilCompiler struct {
	logger *slog.Logger
}

// NewIconutilCompiler creates a compiler backed by iconutil
func NewIconutilCompiler(logger *slog.Logger) *IconutilCompiler {
	return &IconutilCompiler{
		logger: logger.With("component", "iconutil"),
	}
}

// Name returns the compiler name
func (c *IconutilCompiler) Name() string {
	return KindIconutil
}

// Compile runs `iconutil -c icns <iconsetDir> -o <outputPath>`
func (c *IconutilCompiler) Compile(ctx context.Context, iconsetDir, outputPath string) (string, error) {
	cmd := exec.CommandContext(ctx, iconutilBinary, "-c", "icns", iconsetDir, "-o", outputPath)

	c.logger.Debug("Executing iconutil", "iconset", iconsetDir, "output", outputPath)

	// Capture stdout and stderr separately; stderr is the diagnostic on failure
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	stdoutStr := stdout.String()
	stderrStr := stderr.String()

	if err != nil {
		diag := strings.TrimSpace(stderrStr)
		if diag == "" {
			diag = strings.TrimSpace(stdoutStr)
		}
		return diag, fmt.Errorf("iconutil failed: %w", err)
	}

	c.logger.Debug("iconutil finished", "output_length", len(stdoutStr)+len(stderrStr))
	return stdoutStr + stderrStr, nil
}
