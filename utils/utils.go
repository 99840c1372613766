package utils

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TestData is one entry of testdata/testcase.yaml.
// Expected maps a mode name to its value; Errors maps a mode name to the
// kind of error evaluation must fail with.
type TestData struct {
	Label    string
	Enable   bool
	Lenient  bool
	Input    string
	Expected map[string]int64
	Errors   map[string]string
}

func ReadTestData(s []byte) ([]TestData, error) {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		return nil, fmt.Errorf("read test data: %w", err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data, nil
}
