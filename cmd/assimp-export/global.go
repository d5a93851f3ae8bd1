package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	assimpexport "github.com/flywave/go-assimp-export"
	"github.com/flywave/go-assimp-export/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "assimp-export"
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var legalOutputTypes = []string{jsonFormat, yamlFormat}

// newConverter builds the service used by the convert and formats commands.
var newConverter = func(cfg *config.Config) (assimpexport.Converter, error) {
	opts := []assimpexport.Option{assimpexport.WithVerify(cfg.Verify)}
	if cfg.Log.Enabled {
		logger, err := assimpexport.NewLogger(cfg.Log.Level, cfg.Log.Development)
		if err != nil {
			return nil, err
		}
		opts = append(opts, assimpexport.WithLogger(logger))
	}
	return assimpexport.NewService(cfg.Log.Enabled, opts...), nil
}

type GlobalOptions struct {
	ConfigFilePath string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFilePath, "config", o.ConfigFilePath, "Read settings from this YAML file.")
}

func (o *GlobalOptions) LoadConfig() (*config.Config, error) {
	return config.NewLoader().WithConfigPath(o.ConfigFilePath).Load()
}

func validateOutput(output string) error {
	if len(output) > 0 && !slices.Contains(legalOutputTypes, output) {
		return fmt.Errorf("output format must be one of (%s)", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

func printStructured(w io.Writer, output string, v interface{}) error {
	switch output {
	case jsonFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case yamlFormat:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("unsupported output format %q", output)
}

func NewAssimpExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: appName + " converts USDZ assets to OBJ with assimp",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	cmd.AddCommand(NewCmdConvert())
	cmd.AddCommand(NewCmdFormats())
	cmd.AddCommand(NewCmdInspect())
	cmd.AddCommand(NewCmdVersion())
	return cmd
}
