package input

import (
	"errors"
	"testing"
)

// scriptedSource replays a fixed sequence of read outcomes. A nil entry
// models a read timeout (no data within the raw-mode read window).
type scriptedSource struct {
	steps []*byte
	err   error
	pos   int
}

func bp(b byte) *byte { return &b }

func (s *scriptedSource) ReadByte() (byte, bool, error) {
	if s.pos >= len(s.steps) {
		if s.err != nil {
			return 0, false, s.err
		}
		return 0, false, nil
	}
	step := s.steps[s.pos]
	s.pos++
	if step == nil {
		return 0, false, nil
	}
	return *step, true, nil
}

func TestDecoder_ReadKey(t *testing.T) {
	tests := []struct {
		name  string
		steps []*byte
		want  Key
	}{
		{
			name:  "printable q",
			steps: []*byte{bp('q')},
			want:  Key{Kind: Printable, Ch: 'q'},
		},
		{
			name:  "printable after leading timeouts",
			steps: []*byte{nil, nil, bp('x')},
			want:  Key{Kind: Printable, Ch: 'x'},
		},
		{
			name:  "control byte ctrl-q",
			steps: []*byte{bp(0x11)},
			want:  Key{Kind: Control, Ch: 0x11},
		},
		{
			name:  "carriage return is control",
			steps: []*byte{bp('\r')},
			want:  Key{Kind: Control, Ch: '\r'},
		},
		{
			name:  "delete byte is control",
			steps: []*byte{bp(0x7f)},
			want:  Key{Kind: Control, Ch: 0x7f},
		},
		{
			name:  "lone escape resolves on first timeout",
			steps: []*byte{bp(0x1b), nil},
			want:  Key{Kind: Escape},
		},
		{
			name:  "escape with bracket then timeout",
			steps: []*byte{bp(0x1b), bp('['), nil},
			want:  Key{Kind: Escape},
		},
		{
			name:  "arrow up",
			steps: []*byte{bp(0x1b), bp('['), bp('A')},
			want:  Key{Kind: ArrowUp},
		},
		{
			name:  "arrow down",
			steps: []*byte{bp(0x1b), bp('['), bp('B')},
			want:  Key{Kind: ArrowDown},
		},
		{
			name:  "arrow right",
			steps: []*byte{bp(0x1b), bp('['), bp('C')},
			want:  Key{Kind: ArrowRight},
		},
		{
			name:  "arrow left",
			steps: []*byte{bp(0x1b), bp('['), bp('D')},
			want:  Key{Kind: ArrowLeft},
		},
		{
			name:  "unrecognized CSI downgrades to escape",
			steps: []*byte{bp(0x1b), bp('['), bp('Z')},
			want:  Key{Kind: Escape},
		},
		{
			name:  "non-bracket sequence downgrades to escape",
			steps: []*byte{bp(0x1b), bp('O'), bp('P')},
			want:  Key{Kind: Escape},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(&scriptedSource{steps: tt.steps})
			got, err := d.ReadKey()
			if err != nil {
				t.Fatalf("ReadKey() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecoder_ReadKey_Error(t *testing.T) {
	readErr := errors.New("device gone")

	tests := []struct {
		name  string
		steps []*byte
	}{
		{name: "failure on first byte", steps: nil},
		{name: "failure inside sequence", steps: []*byte{bp(0x1b)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(&scriptedSource{steps: tt.steps, err: readErr})
			_, err := d.ReadKey()
			if !errors.Is(err, ErrRead) {
				t.Errorf("ReadKey() error = %v, want ErrRead kind", err)
			}
		})
	}
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key{Kind: Printable, Ch: 'q'}, `printable('q')`},
		{Key{Kind: Control, Ch: 0x11}, "control(0x11)"},
		{Key{Kind: Escape}, "escape"},
		{Key{Kind: ArrowUp}, "arrow-up"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key.String() = %q, want %q", got, tt.want)
		}
	}
}
