// Package discovery expands command-line inputs into Julia source files.
package discovery

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// StdinPath is the input that selects standard input instead of a file.
const StdinPath = "-"

// FileNotFoundError is returned when an explicit, non-glob input does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return "file not found: " + e.Path
}

// DiscoveredFile is a Julia source file found during discovery.
type DiscoveredFile struct {
	// Path preserves the user's spelling for explicit file inputs and is
	// absolute for files found through directories or globs.
	Path string

	// ConfigRoot is the directory config discovery starts from.
	ConfigRoot string
}

// IsStdin reports whether the file stands for standard input.
func (f DiscoveredFile) IsStdin() bool {
	return f.Path == StdinPath
}

// Options configures file discovery behavior.
type Options struct {
	// Patterns are the doublestar patterns matched inside directories.
	// Defaults to DefaultPatterns().
	Patterns []string

	// ExcludePatterns drop matching files from the results.
	ExcludePatterns []string
}

// DefaultPatterns returns the file patterns searched inside directories.
func DefaultPatterns() []string {
	return []string{"*.jl"}
}

// Discover finds Julia files matching the given inputs.
// Each input can be:
//   - "-" for standard input
//   - a specific file path
//   - a directory, searched recursively with Options.Patterns
//   - a doublestar glob pattern
//
// Results are deduplicated by absolute path and sorted, with stdin first.
func Discover(inputs []string, opts Options) ([]DiscoveredFile, error) {
	if len(opts.Patterns) == 0 {
		opts.Patterns = DefaultPatterns()
	}

	seen := make(map[string]bool)
	var results []DiscoveredFile

	for _, input := range inputs {
		if input == StdinPath {
			if !seen[StdinPath] {
				seen[StdinPath] = true
				wd, err := os.Getwd()
				if err != nil {
					return nil, err
				}
				results = append(results, DiscoveredFile{Path: StdinPath, ConfigRoot: wd})
			}
			continue
		}
		discovered, err := discoverInput(input, opts, seen)
		if err != nil {
			return nil, err
		}
		results = append(results, discovered...)
	}

	slices.SortStableFunc(results, func(a, b DiscoveredFile) int {
		if a.IsStdin() != b.IsStdin() {
			if a.IsStdin() {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Path, b.Path)
	})

	return results, nil
}

func discoverInput(input string, opts Options, seen map[string]bool) ([]DiscoveredFile, error) {
	// Glob characters go straight to doublestar; os.Stat rejects them on Windows.
	if ContainsGlobChars(input) {
		return globMatches(input, opts, seen)
	}

	info, err := os.Stat(input)
	if err == nil {
		if info.IsDir() {
			return discoverDirectory(input, opts, seen)
		}
		return discoverFile(input, opts, seen)
	}
	if os.IsNotExist(err) {
		return nil, &FileNotFoundError{Path: input}
	}
	return nil, err
}

// ContainsGlobChars reports whether path holds doublestar pattern syntax.
func ContainsGlobChars(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', '[', ']', '{', '}':
			return true
		}
	}
	return false
}

// discoverFile accepts an explicit file regardless of its extension.
func discoverFile(path string, opts Options, seen map[string]bool) ([]DiscoveredFile, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if isExcluded(absPath, opts.ExcludePatterns) || seen[absPath] {
		return nil, nil
	}
	seen[absPath] = true

	return []DiscoveredFile{{Path: path, ConfigRoot: filepath.Dir(absPath)}}, nil
}

func discoverDirectory(dir string, opts Options, seen map[string]bool) ([]DiscoveredFile, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	var results []DiscoveredFile
	for _, pattern := range opts.Patterns {
		// "**/" also matches zero directories, so direct children are included.
		discovered, err := globMatches(filepath.Join(absDir, "**", pattern), opts, seen)
		if err != nil {
			return nil, err
		}
		results = append(results, discovered...)
	}
	return results, nil
}

func globMatches(pattern string, opts Options, seen map[string]bool) ([]DiscoveredFile, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	var results []DiscoveredFile
	for _, match := range matches {
		absPath, err := filepath.Abs(match)
		if err != nil {
			return nil, err
		}
		if isExcluded(absPath, opts.ExcludePatterns) || seen[absPath] {
			continue
		}
		seen[absPath] = true

		results = append(results, DiscoveredFile{Path: absPath, ConfigRoot: filepath.Dir(absPath)})
	}
	return results, nil
}

// isExcluded matches each pattern against the absolute path, the base name,
// and every suffix subpath, so "vendor/*" excludes direct children of any
// vendor directory. doublestar always expects forward slashes.
func isExcluded(absPath string, excludePatterns []string) bool {
	if len(excludePatterns) == 0 {
		return false
	}

	absPathSlash := filepath.ToSlash(absPath)
	base := filepath.Base(absPath)
	parts := splitPath(absPath)

	for _, pattern := range excludePatterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.Match(pattern, absPathSlash); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
		for i := range parts {
			subpath := filepath.ToSlash(filepath.Join(parts[i:]...))
			if matched, err := doublestar.Match(pattern, subpath); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// splitPath splits a path into its components, dropping any root or volume.
// "/home/user/vendor/a.jl" returns ["home", "user", "vendor", "a.jl"].
func splitPath(path string) []string {
	var parts []string
	for path != "" {
		dir, file := filepath.Split(path)
		if file != "" {
			parts = append([]string{file}, parts...)
		}
		path = filepath.Clean(dir)

		if path == "/" || path == "." {
			break
		}
		vol := filepath.VolumeName(path)
		if vol != "" && (path == vol || path == vol+string(filepath.Separator)) {
			break
		}
	}
	return parts
}
