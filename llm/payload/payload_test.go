package payload

import (
	"math"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	req := &ConversionRequest{
		Value:    5,
		From:     "m",
		To:       "ft",
		Category: "Length",
		Model:    "mistralai/Mistral-7B-Instruct-v0.2",
	}

	got, err := BuildPrompt(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(strings.ToLower(got), "convert 5 m to ft") {
		t.Fatalf("prompt does not embed the conversion:\n%s", got)
	}
	if !strings.Contains(got, "in the category of Length") {
		t.Fatalf("prompt does not embed the category:\n%s", got)
	}
}

func TestBuildPrompt_NoEscaping(t *testing.T) {
	req := &ConversionRequest{Value: 1.5, From: "m/s", To: "km/h", Category: "Speed", Model: "x"}
	got, err := BuildPrompt(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "convert 1.5 m/s to km/h") {
		t.Fatalf("unit labels must be rendered verbatim:\n%s", got)
	}

	req = &ConversionRequest{Value: 2, From: "fl oz", To: "cm³", Category: "Volume", Model: "x"}
	got, err = BuildPrompt(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "convert 2 fl oz to cm³") {
		t.Fatalf("unit labels must be rendered verbatim:\n%s", got)
	}
}

func TestBuildPrompt_Invalid(t *testing.T) {
	tests := []struct {
		req         *ConversionRequest
		explanation string
	}{
		{nil, "nil request"},
		{&ConversionRequest{Value: math.NaN(), From: "m", To: "ft", Category: "Length", Model: "x"}, "NaN"},
		{&ConversionRequest{Value: math.Inf(1), From: "m", To: "ft", Category: "Length", Model: "x"}, "infinity"},
		{&ConversionRequest{Value: 1, To: "ft", Category: "Length", Model: "x"}, "missing from"},
		{&ConversionRequest{Value: 1, From: "m", To: "ft", Model: "x"}, "missing category"},
		{&ConversionRequest{Value: 1, From: "m", To: "ft", Category: "Length"}, "missing model"},
	}
	for _, tc := range tests {
		if _, err := BuildPrompt(tc.req); err == nil {
			t.Errorf("expected error for %s", tc.explanation)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{0, "0"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{1e21, "1000000000000000000000"},
	}
	for _, tc := range tests {
		if got := FormatValue(tc.in); got != tc.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuery(t *testing.T) {
	req := &ConversionRequest{Value: 5, From: "m", To: "ft"}
	if got := req.Query(); got != "5 m to ft" {
		t.Fatalf("Query() = %q", got)
	}
}

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	if p.Temperature != 0.7 || p.MaxNewTokens != 150 || p.ReturnFullText {
		t.Fatalf("unexpected parameters: %+v", p)
	}
}

func TestCountTokens(t *testing.T) {
	n, err := CountTokens("convert 5 m to ft")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Fatalf("expected a positive token count")
	}
}
