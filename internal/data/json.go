package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sgm-simulator/internal/model"
)

func LoadUsageDataset(path string) (*model.UsageDataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds model.UsageDataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, err
	}
	if len(ds.Usage) == 0 {
		return nil, fmt.Errorf("dataset %s has no usage values", path)
	}
	return &ds, nil
}

// ListDatasets returns the JSON dataset paths under dir, sorted by name.
func ListDatasets(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}
