package slider

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	trelliserrors "github.com/trellis-ui/trellis/pkg/errors"
)

// DefaultStep is the value granularity used when props leave Step unset.
const DefaultStep = 0.01

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Props is the public configuration contract of a slider.
type Props struct {
	Min      float64 `validate:"ltfield=Max"`
	Max      float64
	Step     float64 `validate:"gte=0"`
	Value    float64
	Disabled bool
}

// DefaultProps returns a 0..1 slider with the default step.
func DefaultProps() Props {
	return Props{Min: 0, Max: 1, Step: DefaultStep}
}

// Validate reports configuration problems. The caller treats them as
// developer-facing warnings: behavior with an invalid range is
// undefined beyond the percent computation degrading to zero.
func (p Props) Validate() []error {
	var problems []error

	if err := validatorInstance().Struct(p); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				switch fe.StructField() {
				case "Min":
					problems = append(problems, trelliserrors.NewValidationError(
						"slider.min", fmt.Sprintf("min %v must be below max %v", p.Min, p.Max), nil))
				case "Step":
					problems = append(problems, trelliserrors.NewValidationError(
						"slider.step", fmt.Sprintf("step %v must not be negative", p.Step), nil))
				}
			}
		} else {
			problems = append(problems, err)
		}
	}

	if p.Min < p.Max && (p.Value < p.Min || p.Value > p.Max) {
		problems = append(problems, trelliserrors.NewValidationError(
			"slider.value", fmt.Sprintf("value %v outside range [%v, %v]", p.Value, p.Min, p.Max), nil))
	}

	return problems
}

// normalized fills defaulted fields.
func (p Props) normalized() Props {
	if p.Step <= 0 {
		p.Step = DefaultStep
	}
	return p
}
