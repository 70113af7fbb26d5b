package cli

import "github.com/spf13/cobra"

// BoolFlag defines a boolean flag for a command.
type BoolFlag struct {
	Name    string
	Usage   string
	Default bool
}

// StringFlag defines a string flag for a command.
type StringFlag struct {
	Name    string
	Usage   string
	Default string
}

// StringSliceFlag defines a repeatable string flag for a command.
type StringSliceFlag struct {
	Name  string
	Usage string
}

// LeafCommand defines a command that executes logic.
type LeafCommand struct {
	Use        string
	Short      string
	Args       cobra.PositionalArgs
	BoolFlags  []BoolFlag
	StrFlags   []StringFlag
	SliceFlags []StringSliceFlag
	Required   []string
	RunE       func(cmd *cobra.Command, args []string) error
}

// Build creates a cobra.Command with all flags registered.
func (lc LeafCommand) Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   lc.Use,
		Short: lc.Short,
		Args:  lc.Args,
		RunE:  lc.RunE,
	}
	for _, f := range lc.BoolFlags {
		cmd.Flags().Bool(f.Name, f.Default, f.Usage)
	}
	for _, f := range lc.StrFlags {
		cmd.Flags().String(f.Name, f.Default, f.Usage)
	}
	for _, f := range lc.SliceFlags {
		cmd.Flags().StringSlice(f.Name, nil, f.Usage)
	}
	for _, name := range lc.Required {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
