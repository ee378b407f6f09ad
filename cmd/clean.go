package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/begone/internal/picker"
	"github.com/lakshaymaurya-felt/begone/internal/report"
	"github.com/lakshaymaurya-felt/begone/internal/rules"
	"github.com/lakshaymaurya-felt/begone/internal/ui"
	"github.com/lakshaymaurya-felt/begone/internal/walker"
)

var (
	projectsOnly bool
	interactive  bool
)

// cleanDocs is the one-line help for each ecosystem subcommand.
var cleanDocs = map[rules.Ecosystem]string{
	rules.Rust:       "Clean Rust projects (target/)",
	rules.Python:     "Clean Python projects (.venv/, __pycache__/)",
	rules.JavaScript: "Clean JavaScript projects (node_modules/)",
	rules.Java:       "Clean Java projects (target/, build/)",
	rules.Go:         "Clean Go projects (bin/, pkg/)",
	rules.DotNet:     "Clean .NET projects (bin/, obj/)",
	rules.All:        "Clean artifacts of every supported ecosystem",
}

// ecosystemCommands builds one subcommand per ecosystem, 'all' included.
func ecosystemCommands() []*cobra.Command {
	ecosystems := []rules.Ecosystem{
		rules.Rust, rules.Python, rules.JavaScript,
		rules.Java, rules.Go, rules.DotNet, rules.All,
	}
	cmds := make([]*cobra.Command, 0, len(ecosystems))
	for _, eco := range ecosystems {
		cmds = append(cmds, newCleanCmd(eco))
	}
	return cmds
}

func newCleanCmd(eco rules.Ecosystem) *cobra.Command {
	c := &cobra.Command{
		Use:   eco.String() + " [path]",
		Short: cleanDocs[eco],
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runClean(cmd, eco, root)
		},
	}
	c.Flags().BoolVar(&projectsOnly, "projects-only", false, "Only remove artifacts next to a recognized project manifest")
	c.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick which matches to remove interactively")
	return c
}

// runClean performs one cleanup run. Per-path failures are reported and do not
// fail the command; only an unusable root does.
func runClean(cmd *cobra.Command, eco rules.Ecosystem, root string) error {
	cfg := walker.Config{
		Root:         root,
		Ecosystem:    eco,
		Rules:        rules.For(eco),
		DryRun:       dryRun,
		Verbose:      verbose,
		ProjectsOnly: projectsOnly,
	}

	// Interactive mode needs a real terminal on both ends; otherwise fall
	// through to the plain line-per-event output.
	if interactive && ui.IsTerminal(os.Stdout) && ui.IsTerminal(os.Stdin) {
		_, err := picker.Run(cfg)
		return err
	}

	out := cmd.OutOrStdout()
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = ui.IsTerminal(f)
	}

	rep := report.New(out, styled, dryRun)
	if err := walker.Walk(cfg, rep.Handle); err != nil {
		return err
	}
	rep.Summary(root)
	return nil
}
