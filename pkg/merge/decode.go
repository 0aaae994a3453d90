// File: pkg/merge/decode.go
package merge

import (
	"io"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readText reads the whole file at path as UTF-8 text. Byte sequences that
// are not valid UTF-8 are replaced with U+FFFD instead of failing the read.
func readText(fs afero.Fs, path string) (string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(transform.NewReader(file, unicode.UTF8.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
