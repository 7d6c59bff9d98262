package toolchain

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os/exec"
	"regexp"
	"time"

	"swiftwasm/internal/infra/config"
)

// ErrNoCompiler is returned when no usable compiler identity could be
// determined, whether because the compiler binary is missing or because its
// output was not recognizable.
var ErrNoCompiler = errors.New("swift compiler version could not be determined")

// ErrVendorToolchain is returned when a vendor (Xcode) toolchain is detected.
// Vendor toolchains are not supported by the wasm SDK and must be rejected
// before any catalog lookup.
var ErrVendorToolchain = errors.New("vendor toolchain is not supported")

var (
	parenTagRe      = regexp.MustCompile(`\((swift-[^)]+)\)`)
	versionPhraseRe = regexp.MustCompile(`Swift version ([0-9.]+)`)
)

// targetInfo is the subset of `swiftc -print-target-info` output we care about.
type targetInfo struct {
	SwiftCompilerTag string `json:"swiftCompilerTag"`
}

// Toolchain wraps the local swiftc/swift binaries. Every invocation is bounded
// by a timeout so a hung subprocess cannot wedge the tool.
type Toolchain struct {
	swiftc  string
	swift   string
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a Toolchain using the configured command names.
func New(cfg config.ToolchainConfig, logger *slog.Logger) *Toolchain {
	return &Toolchain{
		swiftc:  cfg.SwiftcCommand,
		swift:   cfg.SwiftCommand,
		timeout: cfg.Timeout(),
		logger:  logger,
	}
}

// Probe determines the compiler identity. It prefers the machine-readable
// target info, which distinguishes development snapshots exactly, and falls
// back to scraping the human-readable version output: first a parenthesized
// swift-... tag, then a bare "Swift version N.N.N" number. Subprocess
// failures are treated as absence of information, not as crashes.
func (t *Toolchain) Probe(ctx context.Context) (Identity, error) {
	if tag := t.targetInfoTag(ctx); tag != "" {
		return Identity(tag), nil
	}

	out, err := t.output(ctx, t.swiftc, "--version")
	if err != nil {
		t.logger.Debug("version probe failed", "command", t.swiftc, "error", err)
		return "", ErrNoCompiler
	}
	if m := parenTagRe.FindSubmatch(out); m != nil {
		return Identity(m[1]), nil
	}
	if m := versionPhraseRe.FindSubmatch(out); m != nil {
		return Identity(m[1]), nil
	}
	return "", ErrNoCompiler
}

// targetInfoTag returns the compiler tag from -print-target-info, or "" when
// the compiler is missing or its output is not usable.
func (t *Toolchain) targetInfoTag(ctx context.Context) string {
	out, err := t.output(ctx, t.swiftc, "-print-target-info")
	if err != nil {
		t.logger.Debug("target-info probe failed", "command", t.swiftc, "error", err)
		return ""
	}
	var info targetInfo
	if err := json.Unmarshal(out, &info); err != nil {
		t.logger.Debug("target-info parse failed", "error", err)
		return ""
	}
	return info.SwiftCompilerTag
}

// output runs a command with the configured timeout and returns its stdout.
func (t *Toolchain) output(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return exec.CommandContext(ctx, name, args...).Output()
}
