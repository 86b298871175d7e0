package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trellis-ui/trellis/internal/logger"
	"github.com/trellis-ui/trellis/pkg/components"
	"github.com/trellis-ui/trellis/pkg/theme"
)

func newShowcaseCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "showcase",
		Short: "Render the component catalog with the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := resolveTheme(flags)
			if err != nil {
				return err
			}

			width := terminalWidth()
			ctx := components.NewContext(&th).
				WithPipeline(sessionPipeline()).
				WithWidth(width)

			log.WithComponent("showcase").Debug(
				fmt.Sprintf("rendering catalog direction=%s width=%d", th.Direction, width))

			fmt.Fprintln(cmd.OutOrStdout(), renderShowcase(ctx))
			return nil
		},
	}
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// renderShowcase builds the full catalog page.
func renderShowcase(ctx components.RenderContext) string {
	check := components.Glyph(components.IconCheck, ctx)
	warn := components.Glyph(components.IconWarning, ctx)
	arrow := components.Glyph(components.IconArrow, ctx)

	menu := components.NewMenu(
		components.MenuItem{Label: "Profile", Icon: components.Glyph(components.IconGear, ctx)},
		components.MenuItem{Label: "Favourites", Icon: components.Glyph(components.IconStar, ctx)},
		components.MenuItem{Label: "Search", Icon: components.Glyph(components.IconSearch, ctx)},
		components.MenuItem{Label: "Archived", Disabled: true},
	)
	menu.CursorDown()

	page := components.VStack(
		components.TitleText("trellis component catalog"),
		components.SubtitleText("direction: "+ctx.Theme.Direction.String()),
		components.LabeledDivider("text"),
		components.NewText("Body text with an inline "),
		components.CodeText("code span"),
		components.EmphasisText("Emphasis"),
		components.FaintText("Faint"),
		components.LabeledDivider("buttons"),
		components.HStack(
			components.NewButton("Save").WithIcon(check),
			components.NewButton("Cancel").WithVariant(components.ButtonVariantSecondary),
			components.NewButton("Delete").WithVariant(components.ButtonVariantDanger).WithIcon(warn),
			components.NewButton("Skip").WithVariant(components.ButtonVariantGhost).WithIcon(arrow),
			components.NewButton("Disabled").Disable(),
		).WithGap(1),
		components.LabeledDivider("badges"),
		components.HStack(
			components.SuccessBadge("passing"),
			components.WarningBadge("flaky"),
			components.ErrorBadge("failing"),
			components.InfoBadge("queued"),
			components.NewBadge("neutral"),
		).WithGap(1),
		components.LabeledDivider("menu"),
		menu,
		components.HorizontalDivider(),
		components.FaintText("padding and alignment mirror under --rtl").
			WithAppliers(components.PaddingStart(theme.SpacingSizeSmall)),
	).WithGap(1)

	return page.ViewWithContext(ctx)
}
