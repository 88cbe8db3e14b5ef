package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"spamsift/internal/domain"
)

// LoadCSV reads labeled examples from a CSV file with header columns
// "text" and "label". Rows missing either value are skipped.
func LoadCSV(path string) ([]domain.Example, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV header in %s: %v", domain.ErrData, path, err)
	}

	textCol, labelCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "text":
			textCol = i
		case "label":
			labelCol = i
		}
	}
	if textCol < 0 || labelCol < 0 {
		return nil, fmt.Errorf("%w: CSV %s must contain 'text' and 'label' columns", domain.ErrData, path)
	}

	var examples []domain.Example
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read row in %s: %v", domain.ErrData, path, err)
		}
		if textCol >= len(row) || labelCol >= len(row) {
			continue
		}
		text := strings.TrimSpace(row[textCol])
		label := strings.TrimSpace(row[labelCol])
		if text == "" || label == "" {
			continue
		}
		examples = append(examples, domain.Example{Text: text, Label: label})
	}
	return examples, nil
}

// LoadFiles concatenates the examples of several dataset files.
func LoadFiles(paths []string) ([]domain.Example, error) {
	var examples []domain.Example
	for _, path := range paths {
		loaded, err := LoadCSV(path)
		if err != nil {
			return nil, err
		}
		examples = append(examples, loaded...)
	}
	return examples, nil
}
