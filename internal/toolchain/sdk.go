package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// installTimeout bounds `swift sdk install`, which downloads the artifact
// bundle and needs far longer than a version probe.
const installTimeout = 10 * time.Minute

// ListSDKs returns the output of `swift sdk list`, or "" when the command is
// unavailable or fails. SDK bookkeeping is entirely owned by the swift binary;
// this is a best-effort read used only for matching.
func (t *Toolchain) ListSDKs(ctx context.Context) string {
	out, err := t.output(ctx, t.swift, "sdk", "list")
	if err != nil {
		t.logger.Debug("sdk list failed", "command", t.swift, "error", err)
		return ""
	}
	return string(out)
}

// InstallSDK runs `swift sdk install` for the given artifact URL and checksum,
// capturing combined output. A non-zero exit whose output reports the SDK as
// already installed is treated as success with alreadyInstalled set; any other
// non-zero exit is a failure and the captured output is the diagnostic.
func (t *Toolchain) InstallSDK(ctx context.Context, url, checksum string) (output string, alreadyInstalled bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, installTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, t.swift, "sdk", "install", url, "--checksum", checksum)
	out, err := cmd.CombinedOutput()
	output = string(out)
	if err == nil {
		return output, false, nil
	}
	if strings.Contains(output, "already installed") {
		return output, true, nil
	}
	return output, false, fmt.Errorf("swift sdk install: %w", err)
}
