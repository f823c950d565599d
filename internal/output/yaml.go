package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jokarl/gitunjam/internal/types"
)

// YAMLRenderer renders output in YAML format
type YAMLRenderer struct{}

type yamlOutput struct {
	Version      string `yaml:"version"`
	types.Report `yaml:",inline"`
	Result       string `yaml:"result"`
}

// Render writes the report in YAML format
func (r *YAMLRenderer) Render(w io.Writer, report *types.Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(yamlOutput{
		Version: "1.0",
		Report:  *report,
		Result:  result(report),
	}); err != nil {
		return err
	}
	return encoder.Close()
}
