package cli

import (
	"testing"
	"time"

	"github.com/stridecoach/stride/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"mon,wed,fri", []time.Weekday{time.Monday, time.Wednesday, time.Friday}, false},
		{"Monday, Sunday", []time.Weekday{time.Monday, time.Sunday}, false},
		{"0,6", []time.Weekday{time.Sunday, time.Saturday}, false},
		{"mon,mon,monday", []time.Weekday{time.Monday}, false},
		{"mon,funday", nil, true},
		{"7", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseWeekdays(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseWeekdays(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFormatFrequency(t *testing.T) {
	daily := models.Frequency{Type: models.FrequencyDaily}
	if got := FormatFrequency(daily); got != "daily" {
		t.Errorf("FormatFrequency(daily) = %q", got)
	}

	weekly := models.Frequency{
		Type: models.FrequencyWeekly,
		Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
	}
	if got := FormatFrequency(weekly); got != "weekly on mon,wed,fri" {
		t.Errorf("FormatFrequency(weekly) = %q", got)
	}

	if got := FormatFrequency(models.Frequency{Type: "yearly"}); got != "unknown" {
		t.Errorf("FormatFrequency(yearly) = %q", got)
	}
}
