package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "--help", "-h", "help":
			showUsage()
			return
		}
	}

	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "doctor":
		if err := runDoctor(); err != nil {
			fmt.Fprintf(os.Stderr, "doctor: %v\n", err)
			os.Exit(1)
		}
	case "install-sdk":
		if err := runInstall(); err != nil {
			fmt.Fprintf(os.Stderr, "install-sdk: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\nRun 'swiftwasm --help' for usage information.\n", os.Args[1])
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println(`swiftwasm - Swift WebAssembly toolchain doctor and SDK installer

USAGE:
    swiftwasm COMMAND [FLAGS]

COMMANDS:
    doctor       Verify the local Swift WebAssembly environment
    install-sdk  Detect the installed compiler and install a matching wasm SDK

FLAGS:
    -h, --help       Show this help message
    --config PATH    Config file path (default: ./swiftwasm.yaml, optional)

CONFIGURATION:
    Config file: ./swiftwasm.yaml (all settings have working defaults)
    Environment: SWIFTWASM_* variables override config

EXAMPLES:
    swiftwasm doctor           # Check compiler, Node.js tooling, and SDK
    swiftwasm install-sdk      # Install the wasm SDK matching your toolchain`)
}

// configPath resolves the config file path from --config, the environment, or
// the default location.
func configPath() string {
	for i, arg := range os.Args {
		if arg == "--config" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	if p := os.Getenv("SWIFTWASM_CONFIG"); p != "" {
		return p
	}
	return "swiftwasm.yaml"
}
