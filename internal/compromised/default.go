package compromised

// defaultNames are the packages republished with malicious payloads in the
// September 2025 npm account takeover.
var defaultNames = []string{
	"backslash", "chalk-template", "supports-hyperlinks", "has-ansi",
	"simple-swizzle", "color-string", "error-ex", "color-name",
	"is-arrayish", "slice-ansi", "color-convert", "wrap-ansi",
	"ansi-regex", "supports-color", "strip-ansi", "chalk",
	"debug", "ansi-styles",
}

// Default returns the built-in set.
func Default() Set {
	return MustNew(defaultNames...)
}
