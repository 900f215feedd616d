package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

// binaryName is the executable shipped inside every release archive.
const binaryName = "kidlingo"

// manifestName is the checksum file published next to the archives.
const manifestName = "checksums.txt"

// platform is an OS/architecture pair with a published kidlingo archive.
type platform struct {
	goos, goarch string
}

func currentPlatform() platform {
	return platform{goos: runtime.GOOS, goarch: runtime.GOARCH}
}

// asset returns the archive name goreleaser publishes for p. macOS ships a
// universal binary.
func (p platform) asset() (string, error) {
	if p.goos == "darwin" {
		return binaryName + "_Darwin_all.tar.gz", nil
	}
	arch, ok := releaseArch[p.goarch]
	if !ok {
		return "", fmt.Errorf("unsupported architecture: %s", p.goarch)
	}
	switch p.goos {
	case "linux":
		return fmt.Sprintf("%s_Linux_%s.tar.gz", binaryName, arch), nil
	case "windows":
		return fmt.Sprintf("%s_Windows_%s.zip", binaryName, arch), nil
	}
	return "", fmt.Errorf("unsupported operating system: %s", p.goos)
}

// binary is the file to pull out of the archive.
func (p platform) binary() string {
	if p.goos == "windows" {
		return binaryName + ".exe"
	}
	return binaryName
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// manifest maps asset names to hex SHA-256 digests.
type manifest map[string]string

// parseManifest reads "<digest>  <asset>" lines. Anything else is ignored.
func parseManifest(data []byte) manifest {
	m := manifest{}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 {
			m[fields[1]] = strings.ToLower(fields[0])
		}
	}
	return m
}

// verify checks data against the digest listed for asset.
func (m manifest) verify(asset string, data []byte) error {
	want, ok := m[asset]
	if !ok {
		return fmt.Errorf("no checksum for %s in %s", asset, manifestName)
	}
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != want {
		return fmt.Errorf("%w: %s: expected %s, got %s", ErrChecksum, asset, want, got)
	}
	return nil
}

var errBinaryMissing = errors.New("binary not found in archive")

// extract returns the contents of the file called name inside archive. The
// archive format follows the asset's extension.
func extract(archive []byte, asset, name string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(asset, ".zip") {
		data, err = readZipEntry(archive, name)
	} else {
		data, err = readTarGzEntry(archive, name)
	}
	if errors.Is(err, errBinaryMissing) {
		return nil, fmt.Errorf("%s: %q %w", asset, name, err)
	}
	return data, err
}

func readTarGzEntry(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, errBinaryMissing
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func readZipEntry(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, errBinaryMissing
}
