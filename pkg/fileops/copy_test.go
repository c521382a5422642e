package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Test helpers

func createTestFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
	return path
}

func createTestSymlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		if runtime.GOOS == "windows" {
			t.Skipf("symlink creation failed on Windows: %v", err)
		}
		t.Fatalf("failed to create symlink: %v", err)
	}
}

func readFileContent(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func fileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Tests for CopyExclusive

func TestCopyExclusive(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()

	t.Run("basic copy operation", func(t *testing.T) {
		content := "Hello, exclusive copy world!"
		srcPath := createTestFile(t, srcDir, "source.txt", content)
		destPath := filepath.Join(destDir, "source.txt.bak")

		n, err := CopyExclusive(srcPath, destPath)
		if err != nil {
			t.Fatalf("CopyExclusive failed: %v", err)
		}
		if n != int64(len(content)) {
			t.Errorf("Expected %d bytes copied, got %d", len(content), n)
		}

		if got := readFileContent(t, destPath); got != content {
			t.Errorf("Content mismatch. Expected %q, got %q", content, got)
		}
	})

	t.Run("large file copy", func(t *testing.T) {
		largeContent := strings.Repeat("Large file content line.\n", 10000)
		srcPath := createTestFile(t, srcDir, "large.txt", largeContent)
		destPath := filepath.Join(destDir, "large.txt.bak")

		if _, err := CopyExclusive(srcPath, destPath); err != nil {
			t.Fatalf("CopyExclusive failed: %v", err)
		}

		if readFileContent(t, destPath) != largeContent {
			t.Error("Large file content mismatch")
		}
	})

	t.Run("empty file copy", func(t *testing.T) {
		srcPath := createTestFile(t, srcDir, "empty.txt", "")
		destPath := filepath.Join(destDir, "empty.txt.bak")

		if _, err := CopyExclusive(srcPath, destPath); err != nil {
			t.Fatalf("CopyExclusive failed: %v", err)
		}

		if got := readFileContent(t, destPath); got != "" {
			t.Errorf("Expected empty content, got %q", got)
		}
	})

	t.Run("destination inherits source permissions", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not meaningful on Windows")
		}
		srcPath := createTestFile(t, srcDir, "private.txt", "secret")
		if err := os.Chmod(srcPath, 0600); err != nil {
			t.Fatalf("Failed to chmod source: %v", err)
		}
		destPath := filepath.Join(destDir, "private.txt.bak")

		if _, err := CopyExclusive(srcPath, destPath); err != nil {
			t.Fatalf("CopyExclusive failed: %v", err)
		}

		info, err := os.Stat(destPath)
		if err != nil {
			t.Fatalf("Failed to stat destination: %v", err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
		}
	})
}

func TestCopyExclusiveErrors(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()

	t.Run("existing destination is not modified", func(t *testing.T) {
		srcPath := createTestFile(t, srcDir, "new.txt", "new content")
		destPath := createTestFile(t, destDir, "existing.bak", "original content")

		_, err := CopyExclusive(srcPath, destPath)
		if !IsKind(err, KindAlreadyExists) {
			t.Fatalf("Expected KindAlreadyExists, got: %v", err)
		}

		if got := readFileContent(t, destPath); got != "original content" {
			t.Errorf("Existing destination was modified: %q", got)
		}
	})

	t.Run("dangling symlink at destination", func(t *testing.T) {
		srcPath := createTestFile(t, srcDir, "payload.txt", "payload")
		victim := filepath.Join(destDir, "victim.txt")
		destPath := filepath.Join(destDir, "dangling.bak")
		createTestSymlink(t, victim, destPath)

		_, err := CopyExclusive(srcPath, destPath)
		if !IsKind(err, KindAlreadyExists) {
			t.Fatalf("Expected KindAlreadyExists, got: %v", err)
		}
		if fileExists(victim) {
			t.Error("Copy followed the destination symlink and created its target")
		}
	})

	t.Run("non-existent source file", func(t *testing.T) {
		srcPath := filepath.Join(srcDir, "nonexistent.txt")
		destPath := filepath.Join(destDir, "nonexistent.txt.bak")

		_, err := CopyExclusive(srcPath, destPath)
		if !IsKind(err, KindNotFound) {
			t.Fatalf("Expected KindNotFound, got: %v", err)
		}
		if fileExists(destPath) {
			t.Error("Destination created for missing source")
		}
	})

	t.Run("non-existent destination directory", func(t *testing.T) {
		srcPath := createTestFile(t, srcDir, "source.txt", "content")
		destPath := filepath.Join(destDir, "nonexistent", "dest.bak")

		_, err := CopyExclusive(srcPath, destPath)
		if !IsKind(err, KindIO) {
			t.Fatalf("Expected KindIO, got: %v", err)
		}
		if !strings.Contains(err.Error(), "failed to create destination file") {
			t.Errorf("Expected 'failed to create destination file' error, got: %v", err)
		}
	})

	t.Run("source is directory", func(t *testing.T) {
		srcPath := t.TempDir()
		destPath := filepath.Join(destDir, "dir.bak")

		_, err := CopyExclusive(srcPath, destPath)
		if !IsKind(err, KindWrongFileType) {
			t.Fatalf("Expected KindWrongFileType, got: %v", err)
		}
		if fileExists(destPath) {
			t.Error("Destination created for directory source")
		}
	})

	t.Run("source is symlink", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("no-follow open is unix only")
		}
		target := createTestFile(t, srcDir, "target.txt", "target")
		link := filepath.Join(srcDir, "link.txt")
		createTestSymlink(t, target, link)
		destPath := filepath.Join(destDir, "link.txt.bak")

		_, err := CopyExclusive(link, destPath)
		if !errors.Is(err, ErrSymlink) {
			t.Fatalf("Expected ErrSymlink, got: %v", err)
		}
		if !IsKind(err, KindWrongFileType) {
			t.Errorf("Expected KindWrongFileType, got: %v", KindOf(err))
		}
	})
}

// Tests for EnsureDirectoryExists

func TestEnsureDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("create nested directories", func(t *testing.T) {
		dirPath := filepath.Join(tempDir, "nested", "deep", "directory")

		if err := EnsureDirectoryExists(dirPath); err != nil {
			t.Fatalf("EnsureDirectoryExists failed: %v", err)
		}

		info, err := os.Stat(dirPath)
		if err != nil {
			t.Fatalf("Nested directory was not created: %v", err)
		}
		if !info.IsDir() {
			t.Error("Created nested path is not a directory")
		}
	})

	t.Run("directory already exists", func(t *testing.T) {
		if err := EnsureDirectoryExists(tempDir); err != nil {
			t.Errorf("EnsureDirectoryExists failed for existing directory: %v", err)
		}
	})

	t.Run("file in the way", func(t *testing.T) {
		filePath := createTestFile(t, tempDir, "blocker", "x")

		err := EnsureDirectoryExists(filepath.Join(filePath, "child"))
		if !IsKind(err, KindIO) {
			t.Errorf("Expected KindIO, got: %v", err)
		}
	})
}

// Tests for RemoveFile

func TestRemoveFile(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("removes regular file", func(t *testing.T) {
		path := createTestFile(t, tempDir, "gone.txt", "bye")

		if err := RemoveFile(path); err != nil {
			t.Fatalf("RemoveFile failed: %v", err)
		}
		if fileExists(path) {
			t.Error("File still exists after RemoveFile")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		err := RemoveFile(filepath.Join(tempDir, "never-there.txt"))
		if !IsKind(err, KindNotFound) {
			t.Errorf("Expected KindNotFound, got: %v", err)
		}
	})
}
