package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trelliserrors "github.com/trellis-ui/trellis/pkg/errors"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.Empty(t, DefaultProps().Validate())
}

func TestValidateReportsInvertedRange(t *testing.T) {
	problems := Props{Min: 2, Max: 1, Step: 0.1, Value: 1.5}.Validate()
	require.Len(t, problems, 1)

	var verr *trelliserrors.ValidationError
	require.ErrorAs(t, problems[0], &verr)
	assert.Equal(t, "slider.min", verr.Field)
}

func TestValidateReportsNegativeStep(t *testing.T) {
	problems := Props{Min: 0, Max: 1, Step: -0.5}.Validate()
	require.Len(t, problems, 1)

	var verr *trelliserrors.ValidationError
	require.ErrorAs(t, problems[0], &verr)
	assert.Equal(t, "slider.step", verr.Field)
}

func TestValidateReportsOutOfRangeValue(t *testing.T) {
	problems := Props{Min: 0, Max: 1, Step: 0.01, Value: 2}.Validate()
	require.Len(t, problems, 1)

	var verr *trelliserrors.ValidationError
	require.ErrorAs(t, problems[0], &verr)
	assert.Equal(t, "slider.value", verr.Field)
}
