package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type FormatsOptions struct {
	GlobalOptions

	Output string
}

func DefaultFormatsOptions() *FormatsOptions {
	return &FormatsOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdFormats() *cobra.Command {
	o := DefaultFormatsOptions()
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the export formats assimp was built with.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(o.Output); err != nil {
				return err
			}
			return o.Run(cmd)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *FormatsOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Output format. One of: (json, yaml).")
}

func (o *FormatsOptions) Run(cmd *cobra.Command) error {
	cfg, err := o.LoadConfig()
	if err != nil {
		return err
	}
	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	formats := conv.ListSupportedFormats()
	if o.Output != "" {
		return printStructured(cmd.OutOrStdout(), o.Output, formats)
	}
	for _, f := range formats {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
