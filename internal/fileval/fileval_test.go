package fileval

import (
	"bytes"
	"crypto/rand"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFile_Empty(t *testing.T) {
	t.Parallel()

	if got, err := ReadFile(writeFile(t, "empty.jl", nil), 0); err != nil || got != "" {
		t.Errorf("empty file should be valid, got %v", err)
	}
}

func TestReadFile_SizeCheck(t *testing.T) {
	t.Parallel()

	content := []byte(strings.Repeat("x = 1\n", 100)) // 600 bytes
	f := writeFile(t, "big.jl", content)

	tests := []struct {
		name    string
		maxSize int64
		wantErr bool
	}{
		{"unlimited", 0, false},
		{"under-limit", 1000, false},
		{"exact-limit", 600, false},
		{"over-limit", 599, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadFile(f, tt.maxSize)
			var tooLarge *FileTooLargeError
			if tt.wantErr {
				if !errors.As(err, &tooLarge) {
					t.Fatalf("expected FileTooLargeError, got %v", err)
				}
				if tooLarge.Size != 600 || tooLarge.MaxSize != tt.maxSize {
					t.Errorf("FileTooLargeError = %+v", tooLarge)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestReadFile_Directory(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(t.TempDir(), 0)
	var dirErr *DirectoryError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected DirectoryError, got %v", err)
	}
}

func TestReadFile_UTF8Check(t *testing.T) {
	t.Parallel()

	valid := writeFile(t, "valid.jl", []byte("println(\"héllo ∀ x ∈ xs\")\n"))
	if _, err := ReadFile(valid, 0); err != nil {
		t.Errorf("unexpected error for valid UTF-8: %v", err)
	}

	data := make([]byte, 1024)
	if _, err := rand.Read(data); err != nil {
		t.Fatal(err)
	}
	// A leading 0xFF guarantees the random data is not valid UTF-8.
	data[0] = 0xFF
	binary := writeFile(t, "binary.jl", data)

	_, err := ReadFile(binary, 0)
	var utf8Err *NotUTF8Error
	if !errors.As(err, &utf8Err) {
		t.Fatalf("expected NotUTF8Error for binary file, got %v", err)
	}
}

func TestReadFile_NonexistentFile(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.jl"), 0)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestReadFile_Contents(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "main.jl", []byte("x = 1\n"))
	got, err := ReadFile(path, 0)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if got != "x = 1\n" {
		t.Errorf("ReadFile() = %q", got)
	}

	if _, err := ReadFile(path, 2); err == nil {
		t.Error("expected size error")
	}
}

func TestReadStdin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []byte
		maxSize int64
		want    string
		wantErr any
	}{
		{"empty", nil, 0, "", nil},
		{"source", []byte("if a and b\nend\n"), 0, "if a and b\nend\n", nil},
		{"exact-limit", []byte("abcd"), 4, "abcd", nil},
		{"over-limit", []byte("abcde"), 4, "", &FileTooLargeError{}},
		{"binary", []byte{0xFF, 0xFE, 'x'}, 0, "", &NotUTF8Error{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadStdin(bytes.NewReader(tt.input), "<stdin>", tt.maxSize)
			switch want := tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("ReadStdin() = %q, want %q", got, tt.want)
				}
			case *FileTooLargeError:
				if !errors.As(err, &want) {
					t.Fatalf("expected FileTooLargeError, got %v", err)
				}
				if want.Path != "<stdin>" {
					t.Errorf("Path = %q, want <stdin>", want.Path)
				}
			case *NotUTF8Error:
				if !errors.As(err, &want) {
					t.Fatalf("expected NotUTF8Error, got %v", err)
				}
			}
		})
	}
}
