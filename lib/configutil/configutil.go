package configutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// localName derives the override filename next to a config file,
// "a/pastebin.json5" -> "a/pastebin.local.json5".
func localName(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	return filepath.Join(
		filepath.Dir(name),
		strings.TrimSuffix(base, ext)+".local"+ext,
	)
}

// readInto unmarshals one file into out, reporting whether the file
// contributed anything. A missing or empty file is not an error.
func readInto[T any](path string, out *T) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	return true, json5.Unmarshal(data, out)
}

// ReadConfig reads <name> and merges <name's .local variant> over it, the
// local file winning field by field. Returns os.ErrNotExist when neither
// file contributed anything.
func ReadConfig[T any](name string) (T, error) {
	var out T
	found, err := readInto(name, &out)
	if err != nil {
		return out, err
	}

	local := localName(name)
	var override T
	foundLocal, err := readInto(local, &override)
	if err != nil {
		return out, err
	}
	if foundLocal {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", local)
	}

	if !found && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadConfig but it recursively goes up the filesystem until the root
// to find a configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var out T

	dir, err := os.Getwd()
	if err != nil {
		return out, err
	}
	for {
		out, err = ReadConfig[T](filepath.Join(dir, name))
		if err == nil {
			return out, nil
		}
		if !os.IsNotExist(err) {
			return out, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return out, os.ErrNotExist
		}
		dir = parent
	}
}
