package days

import "testing"

func TestCalibrationDigits(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"1abc2", 12},
		{"pqr3stu8vwx", 38},
		{"a1b2c3d4e5f", 15},
		{"treb7uchet", 77},
	}

	for _, tt := range tests {
		if got := totalCalibration([]byte(tt.line), lineDigits); got != tt.want {
			t.Errorf("totalCalibration(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}

	input := "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet"
	if got := totalCalibration([]byte(input), lineDigits); got != 142 {
		t.Errorf("totalCalibration(sample) = %v, want 142", got)
	}
}

func TestCalibrationDigitsSpelled(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"two1nine", 29},
		{"eightwothree", 83},
		{"abcone2threexyz", 13},
		{"xtwone3four", 24},
		{"4nineeightseven2", 42},
		{"zoneight234", 14},
		{"7pqrstsixteen", 76},
		{"oneight", 18},
	}

	for _, tt := range tests {
		if got := totalCalibration([]byte(tt.line), lineDigitsSpelled); got != tt.want {
			t.Errorf("totalCalibration(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
