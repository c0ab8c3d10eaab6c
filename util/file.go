package util

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory (and any parents) if it does not exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func SaveJson(path string, data interface{}) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	bs, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, bs, 0644)
}
