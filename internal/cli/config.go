// internal/cli/config.go
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// LoadConfig decodes a YAML config file onto o. Unknown keys are errors.
func LoadConfig(path string, o *Options) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ApplyConfig loads o.Config, if set, underneath the flags already parsed
// into fs: values from the file replace defaults, but any flag the user set
// explicitly keeps its command-line value.
func ApplyConfig(fs *pflag.FlagSet, o *Options) error {
	if o.Config == "" {
		return nil
	}
	type setFlag struct{ name, val string }
	var explicit []setFlag
	fs.Visit(func(f *pflag.Flag) {
		explicit = append(explicit, setFlag{f.Name, f.Value.String()})
	})

	args := [2]string{o.GraphFile, o.MappingFile}
	if err := LoadConfig(o.Config, o); err != nil {
		return err
	}
	o.GraphFile, o.MappingFile = args[0], args[1]

	for _, f := range explicit {
		if err := fs.Set(f.name, f.val); err != nil {
			return fmt.Errorf("reapply --%s: %w", f.name, err)
		}
	}
	return nil
}
