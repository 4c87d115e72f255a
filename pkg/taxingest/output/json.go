// Package output serializes assembled datasets.
package output

import (
	"encoding/json"
	"os"

	"github.com/statetax/taxingest-go/pkg/taxingest/models"
)

// ToJSON serializes a dataset as pretty-printed JSON.
func ToJSON(dataset models.Dataset) ([]byte, error) {
	return json.MarshalIndent(dataset, "", "    ")
}

// WriteFile serializes a dataset and writes it whole to path, UTF-8 encoded.
func WriteFile(path string, dataset models.Dataset) error {
	data, err := ToJSON(dataset)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
