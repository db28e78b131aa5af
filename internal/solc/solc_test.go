package solc

import "testing"

func TestParseBinaryType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    BinaryType
		wantErr bool
	}{
		{name: "native", input: "native", want: BinaryTypeNative},
		{name: "solcjs", input: "solcjs", want: BinaryTypeSolcjs},
		{name: "unknown", input: "wasm", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBinaryType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for input %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestShortVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "release version",
			input:    "0.8.24",
			expected: "0.8.24",
		},
		{
			name:     "prerelease with commit",
			input:    "0.8.24-develop.2024.1.5+commit.abc123",
			expected: "0.8.24",
		},
		{
			name:     "nightly",
			input:    "0.8.25-nightly.2024.2.1+commit.deadbeef",
			expected: "0.8.25",
		},
		{
			name:     "no numeric prefix",
			input:    "develop",
			expected: "develop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortVersion(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
