package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"swiftwasm/internal/toolchain"
)

// ErrNotFound is returned when no catalog yields a wasm SDK artifact matching
// the compiler identity.
var ErrNotFound = errors.New("no matching wasm SDK artifact")

// Source is the read side of the swift.org install catalogs.
type Source interface {
	Releases(ctx context.Context) ([]ReleaseEntry, error)
	Snapshots(ctx context.Context, branch string) ([]SnapshotEntry, error)
}

// Resolver maps a compiler identity to a downloadable wasm SDK artifact.
// Resolution is a pure function of the identity and the fetched catalogs.
type Resolver struct {
	source       Source
	downloadBase string
	logger       *slog.Logger
}

// NewResolver creates a Resolver that constructs download URLs under
// downloadBase (the swift.org download root).
func NewResolver(source Source, downloadBase string, logger *slog.Logger) *Resolver {
	return &Resolver{
		source:       source,
		downloadBase: strings.TrimRight(downloadBase, "/"),
		logger:       logger,
	}
}

// Resolve returns the wasm SDK artifact matching id. Release-shaped
// identities go to the stable release catalog, everything else to the
// per-branch snapshot catalogs; a failed snapshot lookup for an identity
// that still carries digits is retried once against the release catalog.
// Vendor identities are rejected outright and cause no fetch.
func (r *Resolver) Resolve(ctx context.Context, id toolchain.Identity) (*Artifact, error) {
	if id.IsVendor() {
		return nil, toolchain.ErrVendorToolchain
	}

	if id.IsRelease() {
		return r.resolveRelease(ctx, id)
	}

	artifact, err := r.resolveSnapshot(ctx, id)
	if err == nil {
		return artifact, nil
	}
	if errors.Is(err, ErrNotFound) && id.ContainsDigits() {
		// Ambiguous bare-version identities sometimes resolve as releases.
		return r.resolveRelease(ctx, id)
	}
	return nil, err
}

func (r *Resolver) resolveRelease(ctx context.Context, id toolchain.Identity) (*Artifact, error) {
	releases, err := r.source.Releases(ctx)
	if err != nil {
		r.logger.Warn("release catalog fetch failed", "error", err)
		return nil, ErrNotFound
	}

	norm := id.NormalizedVersion()
	for _, rel := range releases {
		if rel.Name != norm && rel.Tag != string(id) {
			continue
		}
		for _, p := range rel.Platforms {
			if p.Platform != WasmSDKPlatform {
				continue
			}
			url := fmt.Sprintf("%s/swift-%s-release/wasm-sdk/%s/%s_wasm.artifactbundle.tar.gz",
				r.downloadBase, rel.Name, rel.Tag, rel.Tag)
			return &Artifact{URL: url, Checksum: p.Checksum}, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Resolver) resolveSnapshot(ctx context.Context, id toolchain.Identity) (*Artifact, error) {
	for _, branch := range id.BranchCandidates() {
		snapshots, err := r.source.Snapshots(ctx, branch)
		if err != nil {
			// A missing branch catalog just means trying the next candidate.
			r.logger.Debug("snapshot catalog unavailable", "branch", branch, "error", err)
			continue
		}
		for _, snap := range snapshots {
			if !snapshotMatches(snap.Dir, string(id)) {
				continue
			}
			url := fmt.Sprintf("%s/development/wasm-sdk/%s/%s", r.downloadBase, snap.Dir, snap.Download)
			return &Artifact{URL: url, Checksum: snap.Checksum}, nil
		}
	}
	return nil, ErrNotFound
}

// snapshotMatches pairs a snapshot directory with a compiler identity via
// bidirectional substring containment: the two representations of the same
// snapshot differ only by a version infix (swift-6.2-DEVELOPMENT-... vs
// swift-DEVELOPMENT-...), so either may contain the other.
func snapshotMatches(dir, identity string) bool {
	return strings.Contains(identity, dir) || strings.Contains(dir, identity)
}
