package theme

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	trelliserrors "github.com/trellis-ui/trellis/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// File is the on-disk YAML schema for theme overrides. Every section is
// optional; omitted sections keep the values of the base theme.
type File struct {
	Base      string       `yaml:"base" validate:"omitempty,oneof=light dark"`
	Direction Direction    `yaml:"direction"`
	Palette   *paletteSpec `yaml:"palette"`
	Spacing   *spacingSpec `yaml:"spacing"`
	Slider    *sliderSpec  `yaml:"slider"`
}

type colorSpec struct {
	Light string `yaml:"light" validate:"omitempty,hexcolor"`
	Dark  string `yaml:"dark" validate:"omitempty,hexcolor"`
}

type colourSetSpec struct {
	Base     *colorSpec `yaml:"base"`
	OnBase   *colorSpec `yaml:"on_base"`
	Muted    *colorSpec `yaml:"muted"`
	Contrast *colorSpec `yaml:"contrast"`
}

type paletteSpec struct {
	Primary   *colourSetSpec `yaml:"primary"`
	Secondary *colourSetSpec `yaml:"secondary"`
	Surface   *colourSetSpec `yaml:"surface"`
	Success   *colourSetSpec `yaml:"success"`
	Warning   *colourSetSpec `yaml:"warning"`
	Danger    *colourSetSpec `yaml:"danger"`
	Info      *colourSetSpec `yaml:"info"`
	Neutral   *colourSetSpec `yaml:"neutral"`
}

type spacingSpec struct {
	Padding []int `yaml:"padding" validate:"omitempty,max=6,dive,gte=0"`
	Margin  []int `yaml:"margin" validate:"omitempty,max=6,dive,gte=0"`
}

type sliderSpec struct {
	TrackWidth int    `yaml:"track_width" validate:"omitempty,gt=0"`
	TrackRune  string `yaml:"track_rune"`
	FilledRune string `yaml:"filled_rune"`
	HandleRune string `yaml:"handle_rune"`
}

// Load reads a theme override file from disk and applies it on top of
// the base theme it names (light by default).
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, trelliserrors.NewParseError(path, 0, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Theme{}, trelliserrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(&file); err != nil {
		return Theme{}, convertValidationError(err)
	}

	return file.Apply(), nil
}

// Apply materializes the override file into a Theme.
func (f File) Apply() Theme {
	base := DefaultTheme()
	if f.Base == "dark" {
		base = DarkTheme()
	}

	base.Direction = f.Direction

	if f.Palette != nil {
		applyColourSet(&base.Palette.Primary, f.Palette.Primary)
		applyColourSet(&base.Palette.Secondary, f.Palette.Secondary)
		applyColourSet(&base.Palette.Surface, f.Palette.Surface)
		applyColourSet(&base.Palette.Success, f.Palette.Success)
		applyColourSet(&base.Palette.Warning, f.Palette.Warning)
		applyColourSet(&base.Palette.Danger, f.Palette.Danger)
		applyColourSet(&base.Palette.Info, f.Palette.Info)
		applyColourSet(&base.Palette.Neutral, f.Palette.Neutral)
		base.Typography = defaultTypography(base.Palette)
	}

	if f.Spacing != nil {
		copySpacing(&base.Spacing.Padding, f.Spacing.Padding)
		copySpacing(&base.Spacing.Margin, f.Spacing.Margin)
	}

	if f.Slider != nil {
		if f.Slider.TrackWidth > 0 {
			base.Slider.TrackWidth = f.Slider.TrackWidth
		}
		if f.Slider.TrackRune != "" {
			base.Slider.TrackRune = f.Slider.TrackRune
		}
		if f.Slider.FilledRune != "" {
			base.Slider.FilledRune = f.Slider.FilledRune
		}
		if f.Slider.HandleRune != "" {
			base.Slider.HandleRune = f.Slider.HandleRune
		}
	}

	return base.Normalize()
}

func applyColourSet(dst *ColourSet, spec *colourSetSpec) {
	if spec == nil {
		return
	}
	applyColor(&dst.Base, spec.Base)
	applyColor(&dst.OnBase, spec.OnBase)
	applyColor(&dst.Muted, spec.Muted)
	applyColor(&dst.Contrast, spec.Contrast)
}

func applyColor(dst *lipgloss.AdaptiveColor, spec *colorSpec) {
	if spec == nil {
		return
	}
	if spec.Light != "" {
		dst.Light = spec.Light
	}
	if spec.Dark != "" {
		dst.Dark = spec.Dark
	}
}

func copySpacing(dst *spacingTable, src []int) {
	for i := 0; i < len(src) && i < len(dst); i++ {
		dst[i] = src[i]
	}
}

func convertValidationError(err error) error {
	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return trelliserrors.NewValidationError(fe.Namespace(), fmt.Sprintf("failed %q constraint", fe.Tag()), err)
	}
	return trelliserrors.NewValidationError("", err.Error(), err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
