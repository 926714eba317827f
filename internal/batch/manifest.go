package batch

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// WriteManifest writes the batch results as a JSON manifest, one entry
// per input file, converted or not.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return errors.Wrap(err, "batch: marshal manifest")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "batch: write %s", path)
}
