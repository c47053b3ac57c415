package inventory

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cloudtopo/topograph/pkg/errors"
)

// Read decodes an inventory from JSON.
func Read(r io.Reader) (Inventory, error) {
	var inv Inventory
	dec := json.NewDecoder(r)
	if err := dec.Decode(&inv); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInventory, err, "failed to decode inventory")
	}
	return inv, nil
}

// ReadFile decodes an inventory from a JSON file.
func ReadFile(path string) (Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "inventory file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to open %s", path)
	}
	defer f.Close()
	return Read(f)
}
