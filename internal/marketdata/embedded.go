package marketdata

import (
	"bytes"
	_ "embed"
)

//go:embed fallback_assets.json
var fallbackJSON []byte

// EmbeddedDataset returns the built-in dataset
func EmbeddedDataset() *Dataset {
	ds, err := Decode(bytes.NewReader(fallbackJSON))
	if err != nil {
		panic("embedded asset dataset is invalid: " + err.Error())
	}
	ds.embedded = true
	return ds
}

// LoadOrEmbedded loads path, or the embedded dataset when path is empty or
// cannot be loaded. The load error, if any, is returned alongside the
// fallback so callers can report it.
func LoadOrEmbedded(path string) (*Dataset, error) {
	if path == "" {
		return EmbeddedDataset(), nil
	}
	ds, err := LoadDataset(path)
	if err != nil {
		return EmbeddedDataset(), err
	}
	return ds, nil
}
