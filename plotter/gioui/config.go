package gioui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDir is the directory under os.UserConfigDir where the user can
// override the embedded defaults, e.g. ~/.config/pickupplot/theme.yml.
const ConfigDir = "pickupplot"

// ReadConfig decodes the embedded defaults into target and then overlays the
// user's file of the same name, if one exists. Unknown keys are errors in
// both. An error in the user's file is returned as a warning: target still
// holds the defaults, possibly partially overridden.
func ReadConfig(defaults []byte, filename string, target any) (warn error) {
	dec := yaml.NewDecoder(bytes.NewReader(defaults))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		panic(fmt.Errorf("failed to unmarshal default %s: %w", filename, err))
	}
	if err := ReadCustomConfig(filename, target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return nil
}

// ReadCustomConfig modifies the target argument, i.e. needs a pointer
func ReadCustomConfig(filename string, target any) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(configDir, ConfigDir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
