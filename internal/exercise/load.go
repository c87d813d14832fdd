package exercise

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load reads the TOML exercise file at path over Default().
func Load(path string) (*Exercises, error) {
	ex := Default()
	md, err := toml.DecodeFile(path, ex)
	if err != nil {
		return nil, fmt.Errorf("exercise: parse %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("exercise: %s: %w", path, err)
	}

	return ex, nil
}

// Decode reads TOML exercises from r over Default().
func Decode(r io.Reader) (*Exercises, error) {
	ex := Default()
	md, err := toml.NewDecoder(r).Decode(ex)
	if err != nil {
		return nil, fmt.Errorf("exercise: parse: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}

	return ex, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}
