// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"regexp"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

var (
	// modernID matches YYMM.NNNN[N] with an optional version.
	modernID = regexp.MustCompile(`^\d{4}\.\d{4,5}(v\d+)?$`)

	// legacyID matches archive[.SC]/YYMMNNN with an optional version.
	legacyID = regexp.MustCompile(`^[a-z-]+(\.[A-Z]{2})?/\d{7}(v\d+)?$`)

	versionSuffix = regexp.MustCompile(`v\d+$`)
)

// NormalizeID strips the decorations callers commonly paste around an
// arXiv id: surrounding whitespace, an "arXiv:" prefix, and abs/pdf URLs.
func NormalizeID(raw string) string {
	id := strings.TrimSpace(raw)
	if len(id) >= 6 && strings.EqualFold(id[:6], "arxiv:") {
		id = id[6:]
	}
	for _, marker := range []string{"arxiv.org/abs/", "arxiv.org/pdf/"} {
		if i := strings.Index(id, marker); i >= 0 {
			id = id[i+len(marker):]
			break
		}
	}
	id = strings.TrimSuffix(id, ".pdf")
	return strings.TrimSpace(id)
}

// IsValidID reports whether id (already normalized) has a modern or legacy
// arXiv shape.
func IsValidID(id string) bool {
	return modernID.MatchString(id) || legacyID.MatchString(id)
}

// ValidateID normalizes raw and fails with InvalidParameter when the result
// is not a well-formed arXiv id.
func ValidateID(raw string) (string, error) {
	id := NormalizeID(raw)
	if id == "" {
		return "", types.InvalidParameter("arxiv_id is required")
	}
	if !IsValidID(id) {
		return "", types.InvalidParameter("malformed arXiv id %q (expected e.g. 2301.07041 or hep-th/9901001)", raw)
	}
	return id, nil
}

// SplitVersion separates a trailing version suffix: "2301.07041v2" yields
// ("2301.07041", "v2").
func SplitVersion(id string) (base, version string) {
	if loc := versionSuffix.FindStringIndex(id); loc != nil && loc[0] > 0 {
		return id[:loc[0]], id[loc[0]:]
	}
	return id, ""
}
