// Package modelio loads the CLI's on-disk model and dictionary inputs into
// the already-materialized forms the detector/recognizer/pipeline packages
// take: the recognizer's blank-token-first character list, in particular,
// is a CLI concern, not a recognizer one (§1 takes an already-tokenized
// dictionary).
package modelio

import (
	"bufio"
	"os"

	"github.com/ocrlite/ocrlite/internal/ocrerr"
)

const blankToken = "_"

// LoadCharset reads a newline-delimited character dictionary from path and
// returns it as a recognizer-ready token list with the CTC blank token
// prepended at index 0. Blank lines are skipped; a line's trailing carriage
// return (from a CRLF file) is trimmed.
func LoadCharset(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ocrerr.Wrap(ocrerr.Config, "modelio.LoadCharset", err)
	}
	defer f.Close()

	tokens := []string{blankToken}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if line == "" {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, ocrerr.Wrap(ocrerr.Config, "modelio.LoadCharset", err)
	}
	if len(tokens) == 1 {
		return nil, ocrerr.Wrapf(ocrerr.Config, "modelio.LoadCharset", "dictionary %q contains no characters", path)
	}
	return tokens, nil
}

// ModelPathExists validates a configured model path up front so a missing
// file surfaces as a clear configuration error rather than an opaque
// inference-gateway failure.
func ModelPathExists(path string) error {
	if path == "" {
		return ocrerr.New(ocrerr.Config, "modelio.ModelPathExists", "model path is empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return ocrerr.Wrap(ocrerr.Config, "modelio.ModelPathExists", err)
	}
	if info.IsDir() {
		return ocrerr.Wrapf(ocrerr.Config, "modelio.ModelPathExists", "model path %q is a directory", path)
	}
	return nil
}
