package brainfuck

import (
	"os"

	toml "github.com/BurntSushi/toml"
	cp "github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// ToolConfig is the toml-backed configuration for the command line tools.
// Everything is optional: with no config file the interpreter runs with
// standard streams and no run recording.
type ToolConfig struct {
	Verbose     bool               `toml:"verbose"`
	Expect      string             `toml:"expect"`
	Persistence *PersistenceConfig `toml:"persistence"`
}

func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		Persistence: nil,
	}
}

func (tc *ToolConfig) Clone() *ToolConfig {
	clone := &ToolConfig{}
	cp.Copy(clone, tc)
	return clone
}

// LoadToolConfig decodes a toml file over the defaults. Flags handled by the
// tools themselves take precedence over the decoded values.
func LoadToolConfig(path string) (*ToolConfig, error) {
	conffile, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to load tool config [%s]", path)
	}
	defer conffile.Close()

	config := DefaultToolConfig()
	confDecoder := toml.NewDecoder(conffile)
	if _, err := confDecoder.Decode(config); err != nil {
		return nil, errors.Wrapf(err, "Failed to unmarshal tool config [%s]", path)
	}

	return config, nil
}
