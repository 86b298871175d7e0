package main

import (
	"github.com/spf13/cobra"

	"github.com/trellis-ui/trellis/internal/logger"
	"github.com/trellis-ui/trellis/pkg/style"
	"github.com/trellis-ui/trellis/pkg/theme"
)

type rootFlags struct {
	themePath string
	dark      bool
	rtl       bool
	verbose   bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "trellis",
		Short:         "Trellis renders its themable terminal component catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Path to a YAML theme override file")
	cmd.PersistentFlags().BoolVar(&flags.dark, "dark", false, "Start from the dark theme")
	cmd.PersistentFlags().BoolVar(&flags.rtl, "rtl", false, "Lay components out right-to-left")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newShowcaseCmd(flags, log))
	cmd.AddCommand(newSliderCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolveTheme builds the session theme from the root flags: base
// selection, optional YAML overrides, then direction.
func resolveTheme(flags *rootFlags) (theme.Theme, error) {
	var th theme.Theme
	if flags.themePath != "" {
		loaded, err := theme.Load(flags.themePath)
		if err != nil {
			return theme.Theme{}, err
		}
		th = loaded
	} else if flags.dark {
		th = theme.DarkTheme()
	} else {
		th = theme.DefaultTheme()
	}

	if flags.rtl {
		th = th.WithDirection(theme.DirectionRTL)
	}
	return th, nil
}

// sessionPipeline returns the style pipeline used by the CLI renders.
func sessionPipeline() style.Pipeline {
	return style.Pipeline{Prefixer: style.NopPrefixer{}}
}
