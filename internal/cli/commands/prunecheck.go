package commands

import (
	"github.com/spf13/cobra"

	"github.com/typolint/typolint/internal/meta"
)

// NewPruneCheckCommand creates the hidden prunecheck command. Build scripts
// use it to ask whether a directory is marked fully pruned: exit 0 when
// pruned, 3 when not.
func NewPruneCheckCommand() *cobra.Command {
	opts := struct{ Props string }{}
	cmd := &cobra.Command{
		Use:    "prunecheck <dir>",
		Short:  "Report whether a directory is marked pruned",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			propsPath := cmdCtx.Cfg.PropsFile
			if opts.Props != "" {
				propsPath = opts.Props
			}
			source, err := meta.Load(propsPath)
			if err != nil {
				return err
			}

			if !source.Pruned(args[0]) {
				return ErrNotPruned
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Props, "props", "", "Properties file (default: .typoprops.yaml at the project root)")

	return cmd
}
