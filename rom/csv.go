package rom

import (
	"encoding/csv"
	"os"
)

// ReadCSV reads a ";"-separated, headerless CSV file.
func ReadCSV(path string) ([][]string, error) {
	f, err := os.Open(path) // #nosec G304 -- CLI-supplied input path
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
