package main

import (
	"context"
	"fmt"
	"strings"

	"swiftwasm/internal/catalog"
	"swiftwasm/internal/infra/config"
	"swiftwasm/internal/infra/logger"
	"swiftwasm/internal/toolchain"
)

// runInstall detects the compiler identity, resolves a matching wasm SDK
// artifact from the swift.org catalogs, and installs it via `swift sdk
// install`. Installing an SDK that is already present succeeds.
func runInstall() error {
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

	id, err := tc.Probe(ctx)
	if err != nil {
		fmt.Printf("[ERROR] Could not determine Swift version from '%s'\n", cfg.Toolchain.SwiftcCommand)
		return err
	}

	// Vendor toolchains must be rejected before any catalog fetch.
	if id.IsVendor() {
		fmt.Printf("[ERROR] Detected Xcode toolchain (%s).\n", id)
		fmt.Println("   Swift SDK for WebAssembly requires an OSS toolchain from swift.org.")
		fmt.Println("   Please install one via 'swiftly' or from the swift.org download page.")
		return toolchain.ErrVendorToolchain
	}

	fmt.Printf("Detected Swift version ID: %s\n", id)

	client := catalog.NewClient(cfg.Catalog, log)
	resolver := catalog.NewResolver(client, cfg.Catalog.DownloadBaseURL, log)

	artifact, err := resolver.Resolve(ctx, id)
	if err != nil {
		fmt.Printf("[ERROR] Could not find a matching wasm SDK for version %s\n", id)
		fmt.Println("   Please install manually from https://www.swift.org/download/")
		return err
	}

	fmt.Println("Found wasm SDK:")
	fmt.Printf("  URL: %s\n", artifact.URL)
	fmt.Printf("  Checksum: %s\n", artifact.Checksum)
	fmt.Printf("Running: %s sdk install %s --checksum %s\n",
		cfg.Toolchain.SwiftCommand, artifact.URL, artifact.Checksum)

	output, alreadyInstalled, err := tc.InstallSDK(ctx, artifact.URL, artifact.Checksum)
	if out := strings.TrimSpace(output); out != "" {
		fmt.Println(out)
	}
	if err != nil {
		fmt.Println("[ERROR] Error installing SDK.")
		return err
	}

	if alreadyInstalled {
		fmt.Println("[OK] Swift SDK for WebAssembly is already installed.")
	} else {
		fmt.Println("[OK] Successfully installed Swift SDK for WebAssembly.")
	}
	return nil
}
