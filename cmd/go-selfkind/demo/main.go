package demo

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/go-selfkind/pkg/fluent"
	"github.com/walteh/go-selfkind/pkg/person"
)

func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "walk through the fluent self-return scenarios",
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd)
	}

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command) error {
	// Pinned mutator: the result is a plain *person.Person, even though the
	// receiver is an *AdvancedPerson. Describe is not reachable from it.
	advanced := person.NewAdvanced("IronMan", 40)
	pinned := advanced.SetAgeAsPerson(50)
	zerolog.Ctx(ctx).Info().
		Stringer("result", pinned).
		Msg("pinned chain degraded to the base type")

	// Covariant mutator: the shadowed SetAge keeps the concrete type, so the
	// chain reaches Describe without a cast.
	advanced.SetAge(50).Describe(ctx)

	// Capability chain: inherited mutators and SetAddress mix freely while
	// the concrete type survives.
	resident := person.NewWithAddress("vinay", 26).SetAge(27).SetAddress("India")
	resident = fluent.Relocate(resident, "India, Bengaluru")

	out, err := json.MarshalIndent(resident, "", "  ")
	if err != nil {
		return errors.Errorf("encoding person: %w", err)
	}
	cmd.Println(string(out))

	return nil
}
