package picdat

import (
	"io"
	"os"
	"path/filepath"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/report"
)

// AssetNames lists the client assets the report references.
var AssetNames = []string{report.DygraphsJS, report.DygraphsCSS}

// CopyAssets copies the client assets from srcDir into outDir unmodified.
// It returns the paths written so far, also on error. Assets already in
// place, such as when srcDir is outDir, are left alone and not returned.
func CopyAssets(srcDir, outDir string) ([]string, error) {
	var written []string
	for _, name := range AssetNames {
		dst := filepath.Join(outDir, name)
		copied, err := copyFile(filepath.Join(srcDir, name), dst)
		if err != nil {
			return written, err
		}
		if copied {
			written = append(written, dst)
		}
	}
	return written, nil
}

// copyFile copies src to dst and reports whether it wrote dst. It does
// nothing when both name the same file, and removes a partially written dst
// on failure.
func copyFile(src, dst string) (copied bool, err error) {
	in, err := os.Open(src)
	if err != nil {
		return false, models.NewIOError("read", src, err)
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return false, models.NewIOError("stat", src, err)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return false, nil
	}

	out, err := os.Create(dst)
	if err != nil {
		return false, models.NewIOError("create", dst, err)
	}
	defer func() {
		out.Close()
		if err != nil {
			os.Remove(dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return false, models.NewIOError("write", dst, err)
	}
	if err := out.Close(); err != nil {
		return false, models.NewIOError("write", dst, err)
	}
	return true, nil
}
