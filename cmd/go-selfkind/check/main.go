package check

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/go-selfkind/pkg/selfkind"
)

type Handler struct {
	configPath string
	asJSON     bool
}

func NewCheckCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "check a module for unshadowed fluent mutators",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.Flags().StringVar(&me.configPath, "config", "", "path to a .selfkind.hcl or .selfkind.yaml config file")
	cmd.Flags().BoolVar(&me.asJSON, "json", false, "print the reports as JSON")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return me.Run(cmd.Context(), cmd, dir)
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, cmd *cobra.Command, dir string) error {
	cfg := selfkind.DefaultConfig()
	if me.configPath != "" {
		loaded, err := selfkind.LoadConfig(afero.NewOsFs(), me.configPath)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	reports, err := selfkind.NewChecker(cfg).CheckDir(ctx, dir)
	if err != nil {
		return errors.Errorf("checking %s: %w", dir, err)
	}

	if me.asJSON {
		out, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return errors.Errorf("encoding reports: %w", err)
		}
		cmd.Println(string(out))
	}

	total := 0
	for _, report := range reports {
		for _, v := range report.Violations {
			total++
			if !me.asJSON {
				cmd.Println(v.Error())
			}
		}
	}

	if total > 0 {
		return errors.Errorf("found %d violation%s", total, plural(total))
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
