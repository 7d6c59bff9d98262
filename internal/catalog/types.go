package catalog

// WasmSDKPlatform is the platform identifier of the WebAssembly SDK artifact
// inside a release catalog entry.
const WasmSDKPlatform = "wasm-sdk"

// ReleaseEntry describes one stable release in the swift.org release catalog.
type ReleaseEntry struct {
	Name      string             `json:"name"` // bare version, e.g. "6.2.3"
	Tag       string             `json:"tag"`  // e.g. "swift-6.2.3-RELEASE"
	Platforms []PlatformArtifact `json:"platforms"`
}

// PlatformArtifact is a downloadable artifact for one platform of a release.
type PlatformArtifact struct {
	Platform string `json:"platform"`
	Checksum string `json:"checksum"`
}

// SnapshotEntry describes one development snapshot in a per-branch catalog.
type SnapshotEntry struct {
	Dir      string `json:"dir"`      // e.g. "swift-DEVELOPMENT-SNAPSHOT-2024-12-10-a"
	Download string `json:"download"` // artifact filename within the directory
	Checksum string `json:"checksum"`
}

// Artifact is a resolved wasm SDK download: everything `swift sdk install`
// needs. It is consumed immediately and never persisted.
type Artifact struct {
	URL      string
	Checksum string
}
