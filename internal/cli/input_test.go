package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  Pale Ale \n"), "Name?", &out)
	if err != nil || got != "Pale Ale" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if !strings.Contains(out.String(), "Name?") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("citrus nose\nsoft finish\n\n\n"), "Notes", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "citrus nose\nsoft finish"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"number", "4.5\n", 4.5, false},
		{"empty means zero", "\n", 0, false},
		{"garbage", "four\n", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetFloat(rdr(tt.input), "Rating?", &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer
	got, err := GetInt(rdr("45\n"), "Bitterness?", &out)
	require.NoError(t, err)
	require.Equal(t, 45, got)

	got, err = GetInt(rdr("\n"), "Bitterness?", &out)
	require.NoError(t, err)
	require.Zero(t, got)

	_, err = GetInt(rdr("many\n"), "Bitterness?", &out)
	require.Error(t, err)
}

func TestGetYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := GetYesNo(rdr(tt.input), "Delete?", &out)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
