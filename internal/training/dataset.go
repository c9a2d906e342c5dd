package training

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDataset is returned when the dataset config is missing required keys.
var ErrInvalidDataset = errors.New("invalid dataset config")

// Dataset is the detection dataset description passed to the trainer.
type Dataset struct {
	Path  string `yaml:"path"`
	Train string `yaml:"train"`
	Val   string `yaml:"val"`
	Names Names  `yaml:"names"`
}

// Names maps class indices to labels. Both the list and the mapping forms
// are accepted.
type Names map[int]string

// UnmarshalYAML decodes either a sequence or an index mapping of labels.
func (n *Names) UnmarshalYAML(node *yaml.Node) error {
	out := Names{}
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		for i, name := range list {
			out[i] = name
		}
	case yaml.MappingNode:
		var m map[int]string
		if err := node.Decode(&m); err != nil {
			return err
		}
		for i, name := range m {
			out[i] = name
		}
	default:
		return fmt.Errorf("names: expected a list or mapping, got %s", node.Tag)
	}
	*n = out
	return nil
}

// LoadDataset reads and validates the dataset config at path.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset config: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset config %s: %w", path, err)
	}
	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &ds, nil
}

func (d *Dataset) validate() error {
	switch {
	case d.Train == "":
		return fmt.Errorf("%w: train split is required", ErrInvalidDataset)
	case d.Val == "":
		return fmt.Errorf("%w: val split is required", ErrInvalidDataset)
	case len(d.Names) == 0:
		return fmt.Errorf("%w: at least one class name is required", ErrInvalidDataset)
	}
	return nil
}
