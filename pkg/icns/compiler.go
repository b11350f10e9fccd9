package icns

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// Compiler turns an .iconset directory into an .icns file.
// This abstraction lets tests and non-macOS hosts avoid the real iconutil.
type Compiler interface {
	// Compile builds outputPath from the PNGs in iconsetDir. The returned string
	// carries whatever diagnostic text the compiler produced.
	Compile(ctx context.Context, iconsetDir, outputPath string) (string, error)
	Name() string
}

// Compiler kinds accepted by New
const (
	KindAuto     = "auto"
	KindIconutil = "iconutil"
	KindNative   = "native"
)

// New returns the compiler for kind. "auto" prefers iconutil when it is on PATH.
func New(kind string, logger *slog.Logger) (Compiler, error) {
	switch kind {
	case KindIconutil:
		return NewIconutilCompiler(logger), nil
	case KindNative:
		return NewNativeCompiler(logger), nil
	case KindAuto, "":
		if _, err := exec.LookPath(iconutilBinary); err == nil {
			return NewIconutilCompiler(logger), nil
		}
		logger.Debug("iconutil not found on PATH, using native encoder")
		return NewNativeCompiler(logger), nil
	default:
		return nil, fmt.Errorf("unknown icns compiler %q (expected auto, iconutil or native)", kind)
	}
}
