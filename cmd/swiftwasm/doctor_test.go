package main

import (
	"errors"
	"path/filepath"
	"testing"

	"swiftwasm/internal/toolchain"
)

func TestRunDoctorCompilerMissing(t *testing.T) {
	t.Setenv("SWIFTWASM_SWIFTC_COMMAND", filepath.Join(t.TempDir(), "no-such-swiftc"))

	if err := runDoctor(); err == nil {
		t.Fatal("expected failure when the compiler is absent")
	}
}

func TestRunDoctorVendorToolchainRejected(t *testing.T) {
	dir := t.TempDir()
	swiftc := writeScript(t, dir, "swiftc",
		`echo '{"swiftCompilerTag":"swiftlang-5.9.0.128.108"}'`)
	t.Setenv("SWIFTWASM_SWIFTC_COMMAND", swiftc)

	err := runDoctor()
	if !errors.Is(err, toolchain.ErrVendorToolchain) {
		t.Fatalf("err = %v, want ErrVendorToolchain", err)
	}
}

func TestRunDoctorMatchingSDKInstalled(t *testing.T) {
	dir := t.TempDir()
	swiftc := writeScript(t, dir, "swiftc",
		`echo '{"swiftCompilerTag":"swift-6.2.3-RELEASE"}'`)
	swift := writeScript(t, dir, "swift", `echo 'swift-6.2.3-RELEASE_wasm'`)

	t.Setenv("SWIFTWASM_SWIFTC_COMMAND", swiftc)
	t.Setenv("SWIFTWASM_SWIFT_COMMAND", swift)

	if err := runDoctor(); err != nil {
		t.Fatalf("runDoctor: %v", err)
	}
}

func TestRunDoctorStaleSDK(t *testing.T) {
	dir := t.TempDir()
	swiftc := writeScript(t, dir, "swiftc",
		`echo '{"swiftCompilerTag":"swift-6.2.3-RELEASE"}'`)
	swift := writeScript(t, dir, "swift", `echo 'swift-6.0.3-RELEASE_wasm'`)

	t.Setenv("SWIFTWASM_SWIFTC_COMMAND", swiftc)
	t.Setenv("SWIFTWASM_SWIFT_COMMAND", swift)

	if err := runDoctor(); err == nil {
		t.Fatal("expected failure for a stale SDK")
	}
}

func TestCheckExecutableFound(t *testing.T) {
	// sh is guaranteed on any platform these tests run on.
	result := checkExecutable("sh", "shell")
	if result.Status != StatusOK {
		t.Errorf("expected OK for sh, got %s: %s", result.Status, result.Message)
	}
}

func TestCheckExecutableMissing(t *testing.T) {
	result := checkExecutable("definitely-not-a-real-binary-xyz", "phantom")
	if result.Status != StatusError {
		t.Errorf("expected ERROR for missing binary, got %s", result.Status)
	}
}

func TestCheckInstalledSDKMatch(t *testing.T) {
	id := toolchain.Identity("swift-6.2.3-RELEASE")
	list := "swift-6.2.3-RELEASE_wasm\nswift-6.2.3-RELEASE_wasm-embedded\n"

	result := checkInstalledSDK(id, list)
	if result.Status != StatusOK {
		t.Errorf("expected OK for matching SDK, got %s: %s", result.Status, result.Message)
	}
}

func TestCheckInstalledSDKMismatch(t *testing.T) {
	id := toolchain.Identity("swift-6.2.3-RELEASE")
	list := "swift-6.0.3-RELEASE_wasm\n"

	result := checkInstalledSDK(id, list)
	if result.Status != StatusError {
		t.Errorf("expected ERROR for stale SDK, got %s: %s", result.Status, result.Message)
	}
	if result.Fix == "" {
		t.Error("expected install-sdk fix suggestion")
	}
}

func TestCheckInstalledSDKSnapshotMatch(t *testing.T) {
	id := toolchain.Identity("swift-6.2-DEVELOPMENT-SNAPSHOT-2024-12-10-a")
	list := "6.2-DEVELOPMENT-SNAPSHOT-2024-12-10-a_wasm\n"

	result := checkInstalledSDK(id, list)
	if result.Status != StatusOK {
		t.Errorf("expected OK for snapshot SDK, got %s: %s", result.Status, result.Message)
	}
}

func TestCheckInstalledSDKNoTagGenericScan(t *testing.T) {
	result := checkInstalledSDK("", "some-sdk_WASM\n")
	if result.Status != StatusOK {
		t.Errorf("expected OK for generic wasm scan, got %s: %s", result.Status, result.Message)
	}

	result = checkInstalledSDK("", "macos-sdk\n")
	if result.Status != StatusError {
		t.Errorf("expected ERROR with no wasm SDK at all, got %s: %s", result.Status, result.Message)
	}
}

func TestCheckInstalledSDKEmptyList(t *testing.T) {
	result := checkInstalledSDK("swift-6.2.3-RELEASE", "")
	if result.Status != StatusError {
		t.Errorf("expected ERROR for empty SDK list, got %s", result.Status)
	}
}
