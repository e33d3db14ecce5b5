package jalali

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKnownDates(t *testing.T) {
	tests := []struct {
		jalali    string
		gregorian string
	}{
		{"1402/01/15", "2023-04-04"},
		{"1402/06/01", "2023-08-23"},
		{"1402/01/01", "2023-03-21"},
		{"1403/12/30", "2025-03-20"}, // 1403 is a leap year
		{"1400/10/11", "2022-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.jalali, func(t *testing.T) {
			parsed, err := Parse(tt.jalali)
			require.NoError(t, err)
			assert.Equal(t, tt.gregorian, parsed.Format("2006-01-02"))
			assert.Equal(t, time.UTC, parsed.Location())
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	inputs := []string{
		"",
		"1402-01-15",
		"1402/01",
		"1402/01/15/1",
		"02/01/15",
		"1402/13/01", // month 13
		"1402/07/31", // Mehr has 30 days
		"1402/12/30", // Esfand has 29 days in a common year
		"1402/xx/01",
		"1402/01/00",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Every day of a common year and a leap year survives the round trip.
	for _, year := range []int{1402, 1403} {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 31; day++ {
				value := fmt.Sprintf("%04d/%02d/%02d", year, month, day)
				parsed, err := Parse(value)
				if err != nil {
					continue // not a real date in this month
				}
				assert.Equal(t, value, Format(parsed))
			}
		}
	}
}

func TestFormatZeroTime(t *testing.T) {
	assert.Equal(t, "", Format(time.Time{}))
}
