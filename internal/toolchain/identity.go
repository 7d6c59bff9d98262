package toolchain

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Identity is the compiler identity tag reported by the toolchain, for
// example "swift-6.0.3-RELEASE", "swift-6.2-DEVELOPMENT-SNAPSHOT-2024-12-10-a",
// or a bare version like "6.0.3". Vendor (Xcode) toolchains report tags with a
// "swiftlang-" prefix and are never accepted for SDK matching.
type Identity string

var (
	bareVersionRe   = regexp.MustCompile(`^[0-9.]+$`)
	devBranchRe     = regexp.MustCompile(`^swift-([0-9.]+)-DEVELOPMENT`)
	versionPrefixRe = regexp.MustCompile(`^swift-([0-9.]+)`)
)

// IsVendor reports whether the identity comes from a vendor toolchain.
func (id Identity) IsVendor() bool {
	return strings.HasPrefix(string(id), "swiftlang-")
}

// IsRelease reports whether the identity names a stable release, either by an
// explicit -RELEASE marker or as a bare version number.
func (id Identity) IsRelease() bool {
	if strings.Contains(string(id), "-RELEASE") {
		return true
	}
	return id.isBareVersion()
}

// isBareVersion accepts digits-and-dots identities that parse as a semantic
// version, so strings like "..." don't dispatch to the release catalog.
func (id Identity) isBareVersion() bool {
	if !bareVersionRe.MatchString(string(id)) {
		return false
	}
	_, err := semver.NewVersion(string(id))
	return err == nil
}

// NormalizedVersion strips a leading "swift-" and trailing "-RELEASE" when
// both are present, yielding the bare version used to match release names.
func (id Identity) NormalizedVersion() string {
	s := string(id)
	if strings.HasPrefix(s, "swift-") && strings.HasSuffix(s, "-RELEASE") {
		return strings.TrimSuffix(strings.TrimPrefix(s, "swift-"), "-RELEASE")
	}
	return s
}

// TagCore is the match key used against `swift sdk list` output: the identity
// with every "swift-" and "-RELEASE" occurrence removed.
func (id Identity) TagCore() string {
	s := strings.ReplaceAll(string(id), "swift-", "")
	return strings.ReplaceAll(s, "-RELEASE", "")
}

// ContainsDigits reports whether the identity carries any numeric component.
func (id Identity) ContainsDigits() bool {
	return strings.ContainsAny(string(id), "0123456789")
}

// BranchCandidates returns the snapshot catalog branches to try, in order.
// A version-track snapshot like swift-6.2-DEVELOPMENT-SNAPSHOT-... yields
// [swift-6.2-release, swift-6.2-branch, main]; a trunk snapshot yields [main].
func (id Identity) BranchCandidates() []string {
	s := string(id)

	branch := "main"
	if m := devBranchRe.FindStringSubmatch(s); m != nil {
		branch = "swift-" + m[1] + "-branch"
	}

	candidates := []string{branch, "main"}
	if strings.Contains(s, "DEVELOPMENT") {
		if m := versionPrefixRe.FindStringSubmatch(s); m != nil {
			candidates = append([]string{"swift-" + m[1] + "-release"}, candidates...)
		}
	}

	return dedupe(candidates)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
