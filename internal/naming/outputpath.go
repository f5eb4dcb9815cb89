package naming

import "path/filepath"

// OutputPath builds the destination file path for a parsed stem: the
// rendered display name, the target extension (without dot), joined
// under outputDir. Conversions write flat into the output directory.
func OutputPath(info MediaInfo, outputDir, ext string) string {
	return filepath.Join(outputDir, info.Render()+"."+ext)
}
