package util

import "strings"

var (
	binaryExtensions = []string{
		"7z",
		"a",
		"bin",
		"bz2",
		"class",
		"dll",
		"dylib",
		"exe",
		"gif",
		"gz",
		"jar",
		"jpeg",
		"jpg",
		"o",
		"pdf",
		"png",
		"so",
		"tar",
		"tgz",
		"wasm",
		"xz",
		"zip",
	}
	binaryExtensionsMap map[string]bool
)

func init() {
	binaryExtensionsMap = make(map[string]bool, len(binaryExtensions))
	for _, ext := range binaryExtensions {
		binaryExtensionsMap[ext] = true
	}
}

// BinaryExt reports whether ext (with its leading dot) names a format that cannot hold an operation script.
// A missing extension is treated as text.
func BinaryExt(ext string) bool {
	if len(ext) == 0 {
		return false
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return binaryExtensionsMap[ext]
}
