package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/spidy/internal/application"
	"github.com/bnema/spidy/internal/domain"
	"github.com/spf13/cobra"
)

type matchOutput struct {
	Transcript string
	Matched    bool
	Index      int
	Template   string
	Intent     domain.Intent
	App        domain.AppID
	Parameter  string
	Reply      string
	Target     string
	Fallback   string
	ScrollBy   int
}

func newMatchCmd(app *app) *cobra.Command {
	var (
		asJSON bool
		mobile bool
		native bool
	)

	cmd := &cobra.Command{
		Use:   "match <transcript...>",
		Short: "Match one transcript and show the resulting action",
		Long:  "match runs a transcript through the command catalog and dispatcher without speaking or launching anything. The wake word is not required.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher, catalog, err := app.loadMatcher(cmd.Context())
			if err != nil {
				return err
			}

			env := app.environment()
			env.IsMobileRuntime = env.IsMobileRuntime || mobile
			env.HasNativeLauncher = native

			transcript := strings.Join(args, " ")
			result := matcher.Match(transcript)
			action := application.NewDispatcher(catalog.Apps, app.clock).Dispatch(result, env)

			out := matchOutput{
				Transcript: transcript,
				Matched:    result.Matched(),
				Index:      -1,
				Intent:     action.Intent,
				Parameter:  result.Parameter,
				Reply:      action.SpokenText,
				Target:     action.TargetURL,
				Fallback:   action.FallbackURL,
				ScrollBy:   action.ScrollBy,
			}
			if result.Matched() {
				out.Index = result.Pattern.Index
				out.Template = result.Template().Pattern
				out.App = result.Template().AppID
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return writeMatch(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&mobile, "mobile", false, "Resolve links as a mobile runtime")
	cmd.Flags().BoolVar(&native, "native", false, "Resolve links for a native launcher")

	return cmd
}

func writeMatch(w io.Writer, out matchOutput) error {
	template := "none"
	if out.Matched {
		template = fmt.Sprintf("%d %q", out.Index, out.Template)
	}

	lines := []string{
		"template: " + template,
		"intent: " + string(out.Intent),
	}
	if out.App != "" {
		lines = append(lines, "app: "+string(out.App))
	}
	if out.Parameter != "" {
		lines = append(lines, "parameter: "+out.Parameter)
	}
	lines = append(lines, "reply: "+out.Reply)
	if out.Target != "" {
		lines = append(lines, "target: "+out.Target)
	}
	if out.Fallback != "" {
		lines = append(lines, "fallback: "+out.Fallback)
	}
	if out.ScrollBy != 0 {
		lines = append(lines, fmt.Sprintf("scroll: %+d", out.ScrollBy))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
