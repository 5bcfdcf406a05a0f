package appliance

import (
	"math"
	"testing"
)

func TestValidatePowerRating(t *testing.T) {
	tests := []struct {
		name    string
		p       float64
		wantErr bool
	}{
		{"Valid: small", 0.5, false},
		{"Valid: typical", 1500, false},
		{"Invalid: zero", 0, true},
		{"Invalid: negative", -5, true},
		{"Invalid: NaN", math.NaN(), true},
		{"Invalid: +Inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePowerRating(tt.p)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePowerRating(%v) error = %v, wantErr %v", tt.p, err, tt.wantErr)
			}
			if err != nil && !IsOutOfRange(err) {
				t.Errorf("Expected out-of-range error, got %T", err)
			}
		})
	}
}

func TestValidateDailyHours(t *testing.T) {
	tests := []struct {
		name    string
		h       float64
		wantErr bool
	}{
		{"Valid: zero", 0, false},
		{"Valid: fractional", 7.5, false},
		{"Valid: full day", 24, false},
		{"Invalid: negative", -0.1, true},
		{"Invalid: too high", 24.01, true},
		{"Invalid: NaN", math.NaN(), true},
		{"Invalid: +Inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDailyHours(tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDailyHours(%v) error = %v, wantErr %v", tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestParsePowerRating(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      float64
		wantRest  string
		wantInput bool // expect invalid input error
		wantRange bool // expect out-of-range error
	}{
		{"Integer", "75", 75, "", false, false},
		{"Decimal with spaces", "  60.5  ", 60.5, "  ", false, false},
		{"Second number left unread", "100 8", 100, " 8", false, false},
		{"Unit suffix left unread", "100W", 100, "W", false, false},
		{"Exponent", "1.5e3", 1500, "", false, false},
		{"Empty line", "", 0, "", true, false},
		{"Not a number", "abc", 0, "", true, false},
		{"NaN literal", "NaN", 0, "", true, false},
		{"Overflow", "1e999", 0, "", true, false},
		{"Zero", "0", 0, "", false, true},
		{"Negative", "-10", 0, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := ParsePowerRating(tt.input)
			if IsInvalidInput(err) != tt.wantInput {
				t.Errorf("ParsePowerRating(%q) invalid input = %v, want %v (err: %v)", tt.input, IsInvalidInput(err), tt.wantInput, err)
			}
			if IsOutOfRange(err) != tt.wantRange {
				t.Errorf("ParsePowerRating(%q) out of range = %v, want %v (err: %v)", tt.input, IsOutOfRange(err), tt.wantRange, err)
			}
			if err != nil {
				if UserMessage(err) != PowerPromptError {
					t.Errorf("message = %q, want %q", UserMessage(err), PowerPromptError)
				}
				return
			}
			if got != tt.want || rest != tt.wantRest {
				t.Errorf("ParsePowerRating(%q) = %v, %q, want %v, %q", tt.input, got, rest, tt.want, tt.wantRest)
			}
		})
	}
}

func TestParseDailyHours(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     float64
		wantRest string
		wantErr  bool
	}{
		{"Integer", "8", 8, "", false},
		{"Zero", "0", 0, "", false},
		{"Upper bound", "24", 24, "", false},
		{"Decimal", "2.5", 2.5, "", false},
		{"Suffix", "8h", 8, "h", false},
		{"Too high", "25", 0, "", true},
		{"Negative", "-1", 0, "", true},
		{"Text", "all day", 0, "", true},
		{"Blank", "   ", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := ParseDailyHours(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDailyHours(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if UserMessage(err) != HoursPromptError {
					t.Errorf("message = %q, want %q", UserMessage(err), HoursPromptError)
				}
				return
			}
			if got != tt.want || rest != tt.wantRest {
				t.Errorf("ParseDailyHours(%q) = %v, %q, want %v, %q", tt.input, got, rest, tt.want, tt.wantRest)
			}
		})
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		input    string
		want     float64
		wantRest string
		wantErr  bool
	}{
		{"42", 42, "", false},
		{"+3.5x", 3.5, "x", false},
		{"-.25", -0.25, "", false},
		{"7.", 7, "", false},
		{"2e", 2, "e", false},
		{"2e+x", 2, "e+x", false},
		{"6E-1 rest", 0.6, " rest", false},
		{"1_000", 1, "_000", false},
		{".", 0, "", true},
		{"-", 0, "", true},
		{"inf", 0, "", true},
		{" 5", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rest, err := ScanNumber(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ScanNumber(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want || rest != tt.wantRest {
				t.Errorf("ScanNumber(%q) = %v, %q, want %v, %q", tt.input, got, rest, tt.want, tt.wantRest)
			}
		})
	}
}
