package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotenv loads variables from path without overriding ones already set.
// A missing file is not an error.
func loadDotenv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
