package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/ntpeters/base16-template-converter/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/ntpeters/base16-template-converter/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/ntpeters/base16-template-converter/internal/version.Date={{.Date}}
)
