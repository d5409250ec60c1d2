// Package model defines the data structures shared by the lint engine, its rules and its reporters.
package model

// Path represents a slash-separated file path relative to the scan root.
type Path string

// SourceFile represents a source file loaded for a single run.
type SourceFile struct {
	Path    Path
	Content string
}

// FileSet is an ordered, path-deduplicated collection of source files.
// It is built once per run and never mutated afterwards.
type FileSet struct {
	files []SourceFile
}

// NewFileSet builds a FileSet keeping the first occurrence of every path.
func NewFileSet(files ...SourceFile) FileSet {
	seen := make(map[Path]struct{}, len(files))
	unique := make([]SourceFile, 0, len(files))

	for _, file := range files {
		if _, ok := seen[file.Path]; ok {
			continue
		}

		seen[file.Path] = struct{}{}
		unique = append(unique, file)
	}

	return FileSet{files: unique}
}

// Files returns a copy of the files in set order.
func (fs FileSet) Files() []SourceFile {
	files := make([]SourceFile, len(fs.files))
	copy(files, fs.files)

	return files
}

// Paths returns the file paths in set order.
func (fs FileSet) Paths() []Path {
	paths := make([]Path, 0, len(fs.files))
	for _, file := range fs.files {
		paths = append(paths, file.Path)
	}

	return paths
}

// Len returns the number of files in the set.
func (fs FileSet) Len() int {
	return len(fs.files)
}
