package cam3d

import (
	"errors"
	"strings"
	"testing"
)

func TestNewSettings(t *testing.T) {
	s := NewSettings(75, 16.0/9.0, 0.1, 1000)
	if len(s) != SettingsLen {
		t.Fatalf("len = %d, want %d", len(s), SettingsLen)
	}
	if s[0] != 75 || s[1] != 16.0/9.0 || s[2] != 0.1 || s[3] != 1000 {
		t.Errorf("NewSettings() = %v", s)
	}
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Settings
	}{
		{"flow sequence", "camera: [75, 1.7778, 0.1, 1000]\n", Settings{75, 1.7778, 0.1, 1000}},
		{"block sequence", "camera:\n  - 50\n  - 1\n  - 0.5\n  - 200\n", Settings{50, 1, 0.5, 200}},
		{"short list kept", "camera: [75, 1.5, 0.1]\n", Settings{75, 1.5, 0.1}},
		{"extra keys ignored", "name: main\ncamera: [60, 2, 1, 10]\n", Settings{60, 2, 1, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadSettings(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("LoadSettings() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("LoadSettings() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("LoadSettings()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"missing camera", "fov: 75\n"},
		{"non-numeric", "camera: [wide, tall]\n"},
		{"not yaml", "camera: [75, 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadSettings(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrInvalidSettingsFile) {
				t.Errorf("LoadSettings() error = %v, want ErrInvalidSettingsFile", err)
			}
			if got != nil {
				t.Errorf("LoadSettings() = %v, want nil", got)
			}
		})
	}
}

func TestLoadSettings_ShortListFailsAtConstruction(t *testing.T) {
	s, err := LoadSettings(strings.NewReader("camera: [75, 1.5, 0.1]\n"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if _, err := InitCamera(s); !errors.Is(err, ErrSettingsArity) {
		t.Errorf("InitCamera() error = %v, want ErrSettingsArity", err)
	}
}
