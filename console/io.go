package console

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var loadableExts = []string{".json", ".yaml", ".yml", ".txt"}

func filterFiles[T fs.DirEntry](dir []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, entry := range dir {
			if !entry.Type().IsRegular() {
				continue
			}

			if !slices.Contains(loadableExts, strings.ToLower(filepath.Ext(entry.Name()))) {
				continue
			}

			if !yield(entry) {
				return
			}
		}
	}
}

// loadPath reads list elements from a file, or from every loadable file of
// a directory in name order.
func loadPath(path string) (elements []string, files int, err error) {
	path = filepath.Clean(expandHome(path))

	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	if !info.IsDir() {
		elements, err = loadFile(path)
		if err != nil {
			return nil, 0, err
		}
		return elements, 1, nil
	}

	dir, err := os.ReadDir(path)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	for entry := range filterFiles(dir) {
		loaded, err := loadFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, 0, err
		}
		elements = append(elements, loaded...)
		files++
	}
	return elements, files, nil
}

// loadFile decodes a JSON or YAML sequence of strings; any other file is
// read one element per non-empty line.
func loadFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var elements []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(content, &elements); err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &elements); err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
	default:
		scanner := bufio.NewScanner(bytes.NewReader(content))
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				elements = append(elements, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
	}
	return elements, nil
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		dirname, _ := os.UserHomeDir()
		p = filepath.Join(dirname, p[2:])
	}
	return p
}
