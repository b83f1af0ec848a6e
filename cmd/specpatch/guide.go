package specpatch

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specpatch/specpatch/pkg/output"
)

//go:embed guide.md
var guideMarkdown string

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "guide",
		Short:   MsgGuideShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveGlobals(cmd)
			if err != nil {
				return err
			}
			renderer := output.NewMarkdownRenderer(opts.format)
			fmt.Fprint(cmd.OutOrStdout(), renderer.Render(guideMarkdown))
			return nil
		},
	}
}
