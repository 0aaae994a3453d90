// File: pkg/merge/config.go
package merge

// Default values used when the caller does not override them.
const (
	DefaultOutput = "merged_jsx_files.txt" // Output file written relative to the working directory.
	DefaultRoot   = "."                    // Directory searched when no root is given.
)

// DefaultIgnoreDirs returns the directory names pruned during traversal.
func DefaultIgnoreDirs() []string {
	return []string{"node_modules", ".git", "dist", "build"}
}

// DefaultExtensions returns the file name suffixes that are merged.
// Both .jsx and .js are matched.
func DefaultExtensions() []string {
	return []string{".jsx", ".js"}
}

// Format holds the text framing written around every merged file.
type Format struct {
	Header    string // Printf format taking the file path.
	Separator string // Written after each file's content.
	Footer    string // Printf format taking the total file count.
	ReadError string // Printf format taking the read error, used in place of content.
}

// DefaultFormat returns the framing used by the merged output file.
func DefaultFormat() Format {
	return Format{
		Header:    "=== FILE: %s ===\n",
		Separator: "\n--- END OF FILE ---\n\n",
		Footer:    "\n=== END OF MERGE (Total files: %d) ===\n",
		ReadError: "/* ERROR READING FILE: %v */\n",
	}
}

// Arguments holds the configuration options for a merge run.
type Arguments struct {
	Root       string   // Directory to search.
	Output     string   // Destination path for the merged output file.
	IgnoreDirs []string // Directory names pruned from the walk.
	Extensions []string // File name suffixes to merge, matched case-insensitively.
	Progress   bool     // If true, per-file progress lines are printed.
	Format     Format   // Framing written around each file.
}

// DefaultArguments returns Arguments populated with every default.
func DefaultArguments() Arguments {
	return Arguments{
		Root:       DefaultRoot,
		Output:     DefaultOutput,
		IgnoreDirs: DefaultIgnoreDirs(),
		Extensions: DefaultExtensions(),
		Progress:   true,
		Format:     DefaultFormat(),
	}
}

// withDefaults fills unset fields from DefaultArguments.
func (a Arguments) withDefaults() Arguments {
	d := DefaultArguments()
	if a.Root == "" {
		a.Root = d.Root
	}
	if a.Output == "" {
		a.Output = d.Output
	}
	if len(a.IgnoreDirs) == 0 {
		a.IgnoreDirs = d.IgnoreDirs
	}
	if len(a.Extensions) == 0 {
		a.Extensions = d.Extensions
	}
	if a.Format == (Format{}) {
		a.Format = d.Format
	}
	return a
}
