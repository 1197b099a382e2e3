package application

import (
	"errors"
	"testing"

	"github.com/bnema/spidy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{expr: "2 + 2 * 3", want: "8"},
		{expr: "(2 + 2) * 3", want: "12"},
		{expr: "10 / 4", want: "2.5"},
		{expr: "-3 + 5", want: "2"},
		{expr: "2 x 3", want: "6"},
		{expr: "2x3", want: "6"},
		{expr: "6 times 7", want: "42"},
		{expr: "9 divided by 3", want: "3"},
		{expr: "4 multiplied by 2.5", want: "10"},
		{expr: "8 ÷ 2", want: "4"},
		{expr: "3 × 3", want: "9"},
		{expr: "1 plus 2 minus 4", want: "-1"},
		{expr: "1 over 3", want: "0.3333333333"},
		{expr: "0.1 + 0.2", want: "0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Calculate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatNumber(got))
		})
	}
}

func TestCalculateRejectsInvalidExpressions(t *testing.T) {
	for _, expr := range []string{"2 +", "", "2 3", "(1 + 2", "1 / 0", "rm -rf", "2 divided 3", "1..2 + 1", "2 ^ 3"} {
		t.Run(expr, func(t *testing.T) {
			_, err := Calculate(expr)
			require.Error(t, err)

			var calcErr *domain.CalculationError
			require.True(t, errors.As(err, &calcErr))
			assert.Equal(t, expr, calcErr.Expression)
			assert.ErrorIs(t, err, domain.ErrCalculation)
		})
	}
}

func TestFormatNumberHasNoNegativeZero(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(-0.00000000001))
}
