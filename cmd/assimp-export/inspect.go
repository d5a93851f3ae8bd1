package main

import (
	"fmt"
	"text/tabwriter"

	assimpexport "github.com/flywave/go-assimp-export"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type InspectOptions struct {
	Output string
}

type objReport struct {
	Path             string                     `json:"path" yaml:"path"`
	Vertices         int                        `json:"vertices" yaml:"vertices"`
	TexCoords        int                        `json:"texCoords" yaml:"texCoords"`
	Normals          int                        `json:"normals" yaml:"normals"`
	Faces            int                        `json:"faces" yaml:"faces"`
	Triangles        int                        `json:"triangles" yaml:"triangles"`
	BadIndices       int                        `json:"badIndices,omitempty" yaml:"badIndices,omitempty"`
	Materials        []string                   `json:"materials,omitempty" yaml:"materials,omitempty"`
	MaterialLib      string                     `json:"materialLib,omitempty" yaml:"materialLib,omitempty"`
	MissingMaterials []string                   `json:"missingMaterials,omitempty" yaml:"missingMaterials,omitempty"`
	Textures         []assimpexport.TextureInfo `json:"textures,omitempty" yaml:"textures,omitempty"`
	Min              [3]float64                 `json:"min" yaml:"min"`
	Max              [3]float64                 `json:"max" yaml:"max"`
}

func newObjReport(s *assimpexport.ObjSummary) objReport {
	return objReport{
		Path:             s.Path,
		Vertices:         s.Vertices,
		TexCoords:        s.TexCoords,
		Normals:          s.Normals,
		Faces:            s.Faces,
		Triangles:        s.Triangles,
		BadIndices:       s.BadIndices,
		Materials:        s.Materials,
		MaterialLib:      s.MaterialLib,
		MissingMaterials: s.MissingMaterials,
		Textures:         s.Textures,
		Min:              [3]float64(s.Bounds.Min),
		Max:              [3]float64(s.Bounds.Max),
	}
}

func NewCmdInspect() *cobra.Command {
	o := &InspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect OBJ",
		Short: "Summarise an OBJ file and the textures its materials reference.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(o.Output); err != nil {
				return err
			}
			return o.Run(cmd, args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *InspectOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Output format. One of: (json, yaml).")
}

func (o *InspectOptions) Run(cmd *cobra.Command, args []string) error {
	summary, err := assimpexport.InspectObj(args[0])
	if err != nil {
		return err
	}
	r := newObjReport(summary)
	if o.Output != "" {
		return printStructured(cmd.OutOrStdout(), o.Output, r)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, '\t', 0)
	fmt.Fprintf(w, "PATH\t%s\n", r.Path)
	fmt.Fprintf(w, "VERTICES\t%d\n", r.Vertices)
	fmt.Fprintf(w, "TEXCOORDS\t%d\n", r.TexCoords)
	fmt.Fprintf(w, "NORMALS\t%d\n", r.Normals)
	fmt.Fprintf(w, "FACES\t%d\n", r.Faces)
	fmt.Fprintf(w, "TRIANGLES\t%d\n", r.Triangles)
	fmt.Fprintf(w, "BOUNDS\t%v %v\n", r.Min, r.Max)
	if r.MaterialLib != "" {
		fmt.Fprintf(w, "MTLLIB\t%s\n", r.MaterialLib)
	}
	for _, m := range r.MissingMaterials {
		fmt.Fprintf(w, "MISSING MATERIAL\t%s\n", m)
	}
	for _, t := range r.Textures {
		if t.OK() {
			fmt.Fprintf(w, "TEXTURE\t%s\t%s %dx%d\n", t.Path, t.Format, t.Width, t.Height)
		} else {
			fmt.Fprintf(w, "TEXTURE\t%s\t%s\n", t.Path, t.Error)
		}
	}
	return w.Flush()
}
