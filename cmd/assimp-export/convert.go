package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ConvertOptions struct {
	GlobalOptions

	Verbose bool
	Verify  bool
}

func DefaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdConvert() *cobra.Command {
	o := DefaultConvertOptions()
	cmd := &cobra.Command{
		Use:   "convert INPUT OUTPUT",
		Short: "Convert a USDZ file to OBJ.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd, args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ConvertOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	fs.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "Write diagnostic lines to stderr.")
	fs.BoolVar(&o.Verify, "verify", o.Verify, "Inspect the written OBJ before reporting success.")
}

func (o *ConvertOptions) Validate(args []string) error {
	if args[0] == "" || args[1] == "" {
		return errors.New("input and output paths must not be empty")
	}
	if args[0] == args[1] {
		return errors.New("input and output must be different files")
	}
	return nil
}

func (o *ConvertOptions) Run(cmd *cobra.Command, args []string) error {
	cfg, err := o.LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Lookup("verbose").Changed {
		cfg.Log.Enabled = o.Verbose
	}
	if cmd.Flags().Lookup("verify").Changed {
		cfg.Verify = o.Verify
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	input, output := args[0], args[1]
	report, err := conv.Run(input, output)
	if err != nil {
		msg := conv.LastError()
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("converting %s: %s", input, msg)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s -> %s (meshes: %d, materials: %d, textures: %d)\n",
		report.Input, report.Output, report.Meshes, report.Materials, report.Textures)
	if report.Obj != nil {
		fmt.Fprintf(out, "verified: %d vertices, %d faces\n", report.Obj.Vertices, report.Obj.Faces)
	}
	return nil
}
