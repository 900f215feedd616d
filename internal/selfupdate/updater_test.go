package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformAsset(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "kidlingo_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "kidlingo_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "kidlingo_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "kidlingo_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "kidlingo_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "kidlingo_Windows_x86_64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := platform{goos: tt.goos, goarch: tt.goarch}.asset()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseManifest(t *testing.T) {
	got := parseManifest([]byte("ABC123  kidlingo_Darwin_all.tar.gz\nbadline\n  \nfoo  bar  baz\ndef456  kidlingo_Linux_x86_64.tar.gz\n"))
	assert.Equal(t, manifest{
		"kidlingo_Darwin_all.tar.gz":   "abc123",
		"kidlingo_Linux_x86_64.tar.gz": "def456",
	}, got)

	assert.Empty(t, parseManifest(nil))
}

func TestManifestVerify(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)
	m := manifest{"kidlingo_Linux_x86_64.tar.gz": hex.EncodeToString(h[:])}

	assert.NoError(t, m.verify("kidlingo_Linux_x86_64.tar.gz", data))

	err := m.verify("kidlingo_Linux_x86_64.tar.gz", []byte("tampered"))
	assert.ErrorIs(t, err, ErrChecksum)

	err = m.verify("kidlingo_Windows_x86_64.zip", data)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrChecksum)
	assert.Contains(t, err.Error(), "no checksum")
}

func TestPlatformBinary(t *testing.T) {
	assert.Equal(t, "kidlingo", platform{goos: "linux", goarch: "amd64"}.binary())
	assert.Equal(t, "kidlingo.exe", platform{goos: "windows", goarch: "amd64"}.binary())
}

func TestExtract(t *testing.T) {
	content := []byte("#!/bin/sh\necho kidlingo")

	t.Run("tar.gz", func(t *testing.T) {
		got, err := extract(buildTarGz(t, "kidlingo", content), "kidlingo_Linux_x86_64.tar.gz", "kidlingo")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		got, err := extract(buildZip(t, "kidlingo.exe", content), "kidlingo_Windows_x86_64.zip", "kidlingo.exe")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := extract(buildTarGz(t, "README.md", content), "kidlingo_Linux_x86_64.tar.gz", "kidlingo")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestInstall(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "kidlingo")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	newData := []byte("new-binary-content")
	require.NoError(t, install(newData, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "staged file left behind")

	require.Error(t, install(newData, filepath.Join(dir, "missing")))
}

func latestServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/kidlingo/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer", "v1.0.0", "v1.2.0", true},
		{"same", "v1.2.0", "v1.2.0", false},
		{"older release", "v2.0.0", "v1.9.9", false},
		{"missing v prefix", "1.0.0", "v1.0.1", true},
		{"dev build", "(devel)", "v1.0.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := latestServer(t, tt.latest)
			res, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.UpdateAvailable)
			assert.Equal(t, tt.latest, res.LatestVersion)
			assert.Equal(t, "https://example.com/"+tt.latest, res.ReleaseURL)
		})
	}
}

func TestCheckCustomRepo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/fork/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v0.2.0"}`))
	}))
	defer server.Close()

	res, err := NewChecker(WithBaseURL(server.URL), WithRepo("acme", "fork")).
		Check(context.Background(), &CheckInput{Version: "v0.1.0"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
}

func TestCheckHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestUpdate(t *testing.T) {
	asset, err := currentPlatform().asset()
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}

	content := []byte("new-kidlingo-binary")
	var archive []byte
	if filepath.Ext(asset) == ".zip" {
		archive = buildZip(t, "kidlingo.exe", content)
	} else {
		archive = buildTarGz(t, "kidlingo", content)
	}
	sum := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(sum[:])

	releaseServer := func(t *testing.T, checksum string) *httptest.Server {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/abhisek/kidlingo/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case "/abhisek/kidlingo/releases/download/v2.0.0/" + asset:
				_, _ = w.Write(archive)
			case "/abhisek/kidlingo/releases/download/v2.0.0/checksums.txt":
				if checksum == "" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				fmt.Fprintf(w, "%s  %s\n", checksum, asset)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		t.Cleanup(server.Close)
		return server
	}

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "kidlingo")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))

		server := releaseServer(t, archiveHex)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []Stage
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []Stage{StageCheck, StageDownload, StageVerify, StageExtract, StageInstall, StageDone}, stages)
	})

	t.Run("pinned version skips the check", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "kidlingo")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))

		server := releaseServer(t, archiveHex)
		checker := NewChecker(
			WithBaseURL("http://127.0.0.1:1"),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []Stage
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "2.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)
		assert.NotContains(t, stages, StageCheck)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := latestServer(t, "v1.0.0")
		err := NewChecker(WithBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		server := releaseServer(t, "0000000000000000000000000000000000000000000000000000000000000000")
		err := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("checksums missing", func(t *testing.T) {
		server := releaseServer(t, "")
		err := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download checksums")
	})
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Size:     int64(len(content)),
		Mode:     0o755,
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
