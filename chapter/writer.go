package chapter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pquerna/ffjson/ffjson"
)

// Write stores a chapter as <dir>/<id>.json and returns the path.
// Non-ASCII runes are stored literally, never as \uXXXX escapes: the
// escaped form is exactly the defect class the repairer removes, so an
// escaping writer would reintroduce it. Disabling HTML escaping also
// keeps any residual "<binary data" markers scannable as written.
func Write(dir string, ch Chapter) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ch); err != nil {
		return "", errors.Wrapf(err, "encode chapter %s", ch.ID)
	}

	path := filepath.Join(dir, ch.ID+".json")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", errors.Wrapf(err, "write chapter %s", ch.ID)
	}
	return path, nil
}

// Read loads a chapter file produced by Write.
func Read(path string) (Chapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Chapter{}, errors.Wrap(err, "read chapter file")
	}

	var ch Chapter
	if err := ffjson.Unmarshal(data, &ch); err != nil {
		return Chapter{}, errors.Wrapf(err, "parse chapter file %s", path)
	}
	return ch, nil
}
