package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/trellis-ui/trellis/internal/logger"
	"github.com/trellis-ui/trellis/pkg/components"
	"github.com/trellis-ui/trellis/pkg/slider"
	"github.com/trellis-ui/trellis/pkg/theme"
)

type sliderFlags struct {
	min   float64
	max   float64
	step  float64
	value float64
}

func newSliderCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	sf := &sliderFlags{}

	cmd := &cobra.Command{
		Use:   "slider",
		Short: "Run the interactive slider demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := resolveTheme(flags)
			if err != nil {
				return err
			}

			props := slider.Props{Min: sf.min, Max: sf.max, Step: sf.step, Value: sf.value}
			app := newSliderApp(&th, props, log)

			program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().Float64Var(&sf.min, "min", 0, "Lower bound")
	cmd.Flags().Float64Var(&sf.max, "max", 1, "Upper bound")
	cmd.Flags().Float64Var(&sf.step, "step", slider.DefaultStep, "Value granularity")
	cmd.Flags().Float64Var(&sf.value, "value", 0.5, "Initial value")

	return cmd
}

// sliderApp hosts the slider model inside a small page with help text.
type sliderApp struct {
	theme  *theme.Theme
	slider slider.Model
	last   float64
}

func newSliderApp(th *theme.Theme, props slider.Props, log *logger.Logger) *sliderApp {
	m := slider.NewModel(th, props, log)
	m.Focus()
	m.SetOrigin(2, 4)
	return &sliderApp{theme: th, slider: m, last: m.Value()}
}

func (a *sliderApp) Init() tea.Cmd { return a.slider.Init() }

func (a *sliderApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			a.slider.Close()
			return a, tea.Quit
		}
	case slider.ChangedMsg:
		a.last = msg.Value
		return a, nil
	}

	var cmd tea.Cmd
	a.slider, cmd = a.slider.Update(msg)
	return a, cmd
}

func (a *sliderApp) View() string {
	ctx := components.NewContext(a.theme).WithPipeline(sessionPipeline())

	page := components.VStack(
		components.TitleText("trellis slider"),
		components.SubtitleText("drag the handle, or use arrows, pgup/pgdn, home/end"),
		components.HorizontalDivider().WithWidth(a.theme.Slider.TrackWidth),
		components.NewText(a.slider.View()),
		components.FaintText(fmt.Sprintf("last change: %.2f", a.last)),
		components.FaintText("q to quit"),
	).WithGap(1)

	return page.ViewWithContext(ctx)
}
