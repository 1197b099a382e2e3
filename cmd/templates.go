package cmd

import (
	"fmt"

	"github.com/bnema/spidy/internal/adapters/render/console"
	"github.com/bnema/spidy/internal/application"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect and initialize the command catalog",
	}

	cmd.AddCommand(
		newTemplatesListCmd(app),
		newTemplatesCheckCmd(app),
		newTemplatesInitCmd(app),
	)

	return cmd
}

func newTemplatesListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List command templates in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.catalog.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			patterns, compileErr := application.CompilePatterns(catalog.Templates, catalog.Apps)
			err = app.templateRenderer(cmd.OutOrStdout(), patterns, console.RenderOptions{
				Source: app.catalog.Path(),
				Err:    compileErr,
			})
			if err != nil {
				return fmt.Errorf("render templates: %w", err)
			}
			return nil
		},
	}
}

func newTemplatesCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compile the catalog and report invalid templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.catalog.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			patterns, compileErr := application.CompilePatterns(catalog.Templates, catalog.Apps)
			if compileErr == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d templates\n", len(patterns))
				return nil
			}

			problems := console.TemplateErrors(compileErr)
			for _, problem := range problems {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), problem.Error())
			}
			return fmt.Errorf("catalog %s has %d invalid templates", app.catalog.Path(), len(problems))
		},
	}
}

func newTemplatesInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default catalog to the configured path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.catalog.WriteDefault(cmd.Context(), force); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default catalog to %s\n", app.catalog.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing catalog")

	return cmd
}
