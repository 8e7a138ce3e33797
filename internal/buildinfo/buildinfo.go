package buildinfo

// Package buildinfo exposes version metadata populated at build time via -ldflags.
//
// Example:
//   go build \
//     -ldflags "-X github.com/siamtrade/thai-customs-mcp/internal/buildinfo.Version=1.0.0 \
//               -X github.com/siamtrade/thai-customs-mcp/internal/buildinfo.Commit=abcdef1 \
//               -X github.com/siamtrade/thai-customs-mcp/internal/buildinfo.Date=2026-08-29T12:00:00Z" \
//     ./cmd/thai-customs-mcp

var (
	// Version is the semantic version of the binary (e.g., 1.0.0). Defaults to "dev".
	Version = "dev"

	// Commit is the short git commit hash used for the build. Defaults to ""
	Commit = ""

	// Date is the build date/time in RFC3339 format. Defaults to "".
	Date = ""
)
