package main

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"swiftwasm/internal/infra/config"
	"swiftwasm/internal/infra/logger"
	"swiftwasm/internal/toolchain"
)

// CheckStatus represents the severity of a check outcome.
type CheckStatus string

const (
	StatusOK      CheckStatus = "OK"
	StatusWarning CheckStatus = "WARNING"
	StatusError   CheckStatus = "ERROR"
)

// CheckResult holds the outcome of a single environment check.
type CheckResult struct {
	Status  CheckStatus
	Message string
	Fix     string // optional remediation hint, printed indented
}

func (r CheckResult) print() {
	fmt.Printf("[%s] %s\n", r.Status, r.Message)
	if r.Fix != "" {
		for _, line := range strings.Split(r.Fix, "\n") {
			fmt.Printf("   %s\n", line)
		}
	}
}

// runDoctor verifies the local Swift WebAssembly environment: compiler
// present, OSS toolchain, Node.js tooling, and a matching installed wasm SDK.
// It makes no network calls and installs nothing.
func runDoctor() error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, logCloser, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logCloser()

	ctx := context.Background()
	tc := toolchain.New(cfg.Toolchain, log)

	fmt.Println("Checking environment for Swift WebAssembly development...")
	fmt.Println()

	// 1. Swift compiler must be on PATH; nothing else can be checked without it.
	res := checkExecutable(cfg.Toolchain.SwiftcCommand, "Swift compiler")
	res.print()
	if res.Status == StatusError {
		fmt.Println("   Please install Swift from https://www.swift.org/install/ or via 'swiftly'.")
		return fmt.Errorf("swift compiler not found")
	}

	// 2. The toolchain must come from swift.org, not from Xcode.
	id, probeErr := tc.Probe(ctx)
	switch {
	case probeErr != nil:
		CheckResult{
			Status:  StatusWarning,
			Message: "Could not determine Swift compiler tag. Assuming OSS toolchain.",
		}.print()
	case id.IsVendor():
		CheckResult{
			Status:  StatusError,
			Message: fmt.Sprintf("Detected Xcode toolchain (%s).", id),
			Fix: "Swift SDK for WebAssembly requires an OSS toolchain from swift.org.\n" +
				"Please use 'swiftly use' or select an OSS toolchain in your environment.",
		}.print()
		return toolchain.ErrVendorToolchain
	default:
		CheckResult{
			Status:  StatusOK,
			Message: fmt.Sprintf("OSS toolchain detected (%s)", id),
		}.print()
	}

	// 3. Node.js tooling. Missing entries are reported but never fatal.
	checkExecutable("node", "Node.js").print()
	checkExecutable("npm", "npm").print()

	// 4. A wasm SDK matching the detected toolchain must be installed.
	res = checkInstalledSDK(id, tc.ListSDKs(ctx))
	res.print()
	if res.Status == StatusError {
		return fmt.Errorf("swift SDK for WebAssembly missing")
	}

	fmt.Println()
	fmt.Println("Environment is ready for Swift WebAssembly development!")
	return nil
}

// checkExecutable reports whether cmd is present on PATH. The binary is only
// looked up, never executed.
func checkExecutable(cmd, name string) CheckResult {
	if _, err := exec.LookPath(cmd); err != nil {
		return CheckResult{
			Status:  StatusError,
			Message: fmt.Sprintf("%s not found (%s)", name, cmd),
		}
	}
	return CheckResult{
		Status:  StatusOK,
		Message: fmt.Sprintf("%s found", name),
	}
}

// checkInstalledSDK verifies that the installed SDK list contains an SDK
// matching the toolchain tag. With no tag to match against it falls back to a
// generic scan for any wasm SDK.
func checkInstalledSDK(id toolchain.Identity, sdkList string) CheckResult {
	tagCore := id.TagCore()

	if tagCore == "" {
		if strings.Contains(strings.ToLower(sdkList), "wasm") {
			return CheckResult{
				Status:  StatusOK,
				Message: "Swift SDK for WebAssembly detected (general check)",
			}
		}
		return CheckResult{
			Status:  StatusError,
			Message: "Swift SDK for WebAssembly not found.",
			Fix:     "Please run 'swiftwasm install-sdk' to install it.",
		}
	}

	if strings.Contains(sdkList, tagCore) {
		return CheckResult{
			Status:  StatusOK,
			Message: fmt.Sprintf("Matching Swift SDK for WebAssembly found (%s)", tagCore),
		}
	}
	return CheckResult{
		Status:  StatusError,
		Message: fmt.Sprintf("No matching Swift SDK for WebAssembly found for toolchain %s.", id),
		Fix:     "Please run 'swiftwasm install-sdk' to automatically install the matching SDK.",
	}
}
