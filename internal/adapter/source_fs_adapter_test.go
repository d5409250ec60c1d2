package adapter

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	m "connlint.dev/pkg/connlint/internal/model"
)

func TestLocalSourceFSAdapter_Glob(t *testing.T) {
	t.Run("doublestar crosses directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "contracts", "mainnet", "connectors", "aave", "main.sol"), "contract A {}\n")
		writeTestFile(t, filepath.Join(root, "contracts", "mainnet", "connectors", "aave", "v2", "events.sol"), "event A();\n")
		writeTestFile(t, filepath.Join(root, "contracts", "mainnet", "common", "basic.sol"), "contract Basic {}\n")
		writeTestFile(t, filepath.Join(root, "contracts", "mainnet", "connectors", "aave", "README.md"), "# aave\n")

		got, err := adapter.Glob(context.Background(), m.Path(root), "contracts/**/connectors/**/*.sol")
		if err != nil {
			t.Fatalf("Glob() error = %v", err)
		}

		want := []m.Path{
			"contracts/mainnet/connectors/aave/main.sol",
			"contracts/mainnet/connectors/aave/v2/events.sol",
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Glob() = %v, want %v", got, want)
		}
	})

	t.Run("leading dot slash is accepted", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a", "x.sol"), "")

		got, err := adapter.Glob(context.Background(), m.Path(root), "./a/*.sol")
		if err != nil {
			t.Fatalf("Glob() error = %v", err)
		}

		if !reflect.DeepEqual(got, []m.Path{"a/x.sol"}) {
			t.Fatalf("Glob() = %v", got)
		}
	})

	t.Run("directories are not returned", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		mustMkdirAll(t, filepath.Join(root, "dir.sol"))

		got, err := adapter.Glob(context.Background(), m.Path(root), "**/*.sol")
		if err != nil {
			t.Fatalf("Glob() error = %v", err)
		}

		if len(got) != 0 {
			t.Fatalf("Glob() = %v, want no matches", got)
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		if _, err := adapter.Glob(context.Background(), m.Path(t.TempDir()), "contracts/[a"); err == nil {
			t.Fatalf("Glob() expected error for invalid pattern")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := adapter.Glob(ctx, m.Path(t.TempDir()), "**/*.sol"); err == nil {
			t.Fatalf("Glob() expected context error")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	content := "pragma solidity ^0.7.0;\ncontract A {}\n"
	writeTestFile(t, filepath.Join(root, "connectors", "main.sol"), content)

	got, err := adapter.ReadFile(context.Background(), m.Path(root), "connectors/main.sol")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}

	if _, err := adapter.ReadFile(context.Background(), m.Path(root), "missing.sol"); err == nil {
		t.Fatalf("ReadFile() expected error for missing file")
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.sol")
	writeTestFile(t, path, "contract A {}\n")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdirAll(t, filepath.Dir(path))

	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
