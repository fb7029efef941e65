package cologne

import (
	"bytes"
	"reflect"
	"testing"
)

func TestPackedVecFixtures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Code
	}{
		{
			name:  "wikipedia",
			input: "Wikipedia",
			want:  []Code{Class3, Class4, Class1, Class2},
		},
		{
			name:  "mueller luedenscheidt",
			input: "Müller-Lüdenscheidt",
			want:  []Code{Class6, Class5, Class7, Space, Class5, Class2, Class6, Class8, Class2},
		},
		{
			name:  "breschnew",
			input: "Breschnew",
			want:  []Code{Class1, Class7, Class8, Class6, Class3},
		},
		{
			name:  "hacico",
			input: "Hacico",
			want:  []Code{Class0, Class8, Class4},
		},
		{
			name:  "special char spam",
			input: "!\"#$%&'()*+,-./0123456789:;<=>?@[\\]^_`{|}~`",
			want:  nil,
		},
		{
			name:  "aho aho",
			input: "aho aho",
			want:  []Code{Class0, Space, Class0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec := NewPackedVec()
			vec.ReadFrom([]byte(tt.input))

			if !vec.Equal(PackedVecFromCodes(tt.want)) {
				t.Errorf("ReadFrom(%q) = %v, want %v", tt.input, vec, PackedVecFromCodes(tt.want))
			}
			if got := vec.Codes(); !reflect.DeepEqual(got, append([]Code{}, tt.want...)) {
				t.Errorf("Codes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackedVecLayout(t *testing.T) {
	vec := PackedVecFromCodes([]Code{Class3, Class4, Class1, Class2})

	if vec.Len() != 4 {
		t.Errorf("Expected length 4, got %d", vec.Len())
	}
	// Two codes per byte, older code in the high nibble.
	if want := []byte{0x34, 0x12}; !bytes.Equal(vec.Bytes(), want) {
		t.Errorf("Expected backing bytes %x, got %x", want, vec.Bytes())
	}

	vec = PackedVecFromCodes([]Code{Class6, Class5, Class7})
	if vec.Len() != 3 {
		t.Errorf("Expected length 3, got %d", vec.Len())
	}
	// The unused low nibble of the final byte stays zero.
	if want := []byte{0x65, 0x70}; !bytes.Equal(vec.Bytes(), want) {
		t.Errorf("Expected backing bytes %x, got %x", want, vec.Bytes())
	}

	raw, n := vec.IntoRaw()
	if n != 3 || !bytes.Equal(raw, []byte{0x65, 0x70}) {
		t.Errorf("IntoRaw() = %x, %d", raw, n)
	}
}

func TestPackedVecLast(t *testing.T) {
	vec := NewPackedVec()
	if _, ok := vec.Last(); ok {
		t.Error("Expected no last code on an empty vector")
	}

	vec.Push(Class6)
	if c, ok := vec.Last(); !ok || c != Class6 {
		t.Errorf("Expected last code 6, got %v (%v)", c, ok)
	}

	vec.Push(Class5)
	if c, ok := vec.Last(); !ok || c != Class5 {
		t.Errorf("Expected last code 5, got %v (%v)", c, ok)
	}

	vec.Push(Space)
	if c, ok := vec.Last(); !ok || c != Space {
		t.Errorf("Expected last code Space, got %v (%v)", c, ok)
	}
}

func TestPackedVecPushRules(t *testing.T) {
	// Adjacent duplicates are dropped.
	vec := NewPackedVec()
	vec.Push(Class6)
	vec.Push(Class6)
	vec.Push(Class6)
	if vec.Len() != 1 {
		t.Errorf("Expected duplicate pushes to collapse, got length %d", vec.Len())
	}

	// A trailing Class0 after a non-break class is overwritten in place.
	vec = NewPackedVec()
	vec.Push(Class6)
	vec.Push(Class0)
	vec.Push(Class5)
	if got := vec.Codes(); !reflect.DeepEqual(got, []Code{Class6, Class5}) {
		t.Errorf("Expected stray zero to be overwritten, got %v", got)
	}

	// ...but not when the Class0 follows a Space.
	vec = NewPackedVec()
	vec.Push(Class6)
	vec.Push(Space)
	vec.Push(Class0)
	vec.Push(Class5)
	if got := vec.Codes(); !reflect.DeepEqual(got, []Code{Class6, Space, Class0, Class5}) {
		t.Errorf("Expected Class0 after Space to survive, got %v", got)
	}

	// The overwrite never fires with fewer than two stored codes.
	vec = NewPackedVec()
	vec.Push(Class0)
	vec.Push(Class5)
	if got := vec.Codes(); !reflect.DeepEqual(got, []Code{Class0, Class5}) {
		t.Errorf("Expected leading Class0 to survive, got %v", got)
	}
}

func TestPackedVecFinish(t *testing.T) {
	tests := []struct {
		name string
		push []Code
		want []Code
	}{
		{"trailing class0 dropped", []Code{Class6, Class5, Class0}, []Code{Class6, Class5}},
		{"trailing space dropped", []Code{Class6, Class5, Space}, []Code{Class6, Class5}},
		{"space class0 tail preserved", []Code{Class6, Space, Class0}, []Code{Class6, Space, Class0}},
		{"lone class0 dropped", []Code{Class0}, nil},
		{"lone space dropped", []Code{Space}, nil},
		{"empty", nil, nil},
		{"clean tail untouched", []Code{Class6, Class5}, []Code{Class6, Class5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec := NewPackedVec()
			for _, c := range tt.push {
				vec.Push(c)
			}
			vec.Finish()

			if got := vec.Codes(); !reflect.DeepEqual(got, append([]Code{}, tt.want...)) {
				t.Errorf("Expected %v after Finish, got %v", tt.want, got)
			}
		})
	}
}

func TestPackedVecRoundTrip(t *testing.T) {
	inputs := []string{
		"Wikipedia",
		"Müller-Lüdenscheidt",
		"Er kam, Er sah, Er siegte",
		"Anhand von Grundlagen",
		"aho aho aho",
		"",
	}

	for _, input := range inputs {
		codes := Encode([]byte(input))
		vec := PackedVecFromCodes(codes)
		if got := vec.Codes(); !reflect.DeepEqual(got, append([]Code{}, codes...)) {
			t.Errorf("Round trip of %q: got %v, want %v", input, got, codes)
		}
		if vec.Len() != len(codes) {
			t.Errorf("Round trip of %q: length %d, want %d", input, vec.Len(), len(codes))
		}
	}
}

func TestPackedVecClearReuse(t *testing.T) {
	vec := NewPackedVecCapacity(16)
	vec.ReadFrom([]byte("Wikipedia"))
	first := append([]Code{}, vec.Codes()...)

	vec.ReadFrom([]byte("Wikipedia"))
	if !reflect.DeepEqual(vec.Codes(), first) {
		t.Errorf("Expected identical result after reuse, got %v, want %v", vec.Codes(), first)
	}

	vec.Clear()
	if vec.Len() != 0 || len(vec.Codes()) != 0 {
		t.Errorf("Expected empty vector after Clear, got %v", vec.Codes())
	}
}

func TestPackedVecIterEarlyStop(t *testing.T) {
	vec := NewPackedVec()
	vec.ReadFrom([]byte("Müller-Lüdenscheidt"))

	var got []Code
	for c := range vec.All() {
		got = append(got, c)
		if len(got) == 3 {
			break
		}
	}

	if want := []Code{Class6, Class5, Class7}; !reflect.DeepEqual(got, want) {
		t.Errorf("Expected early-stopped iteration %v, got %v", want, got)
	}
}

func TestPackedVecString(t *testing.T) {
	vec := NewPackedVec()
	vec.ReadFrom([]byte("Müller-Lüdenscheidt"))

	if got := vec.String(); got != "[657 52682]" {
		t.Errorf("Expected string form \"[657 52682]\", got %q", got)
	}

	if got := NewPackedVec().String(); got != "[]" {
		t.Errorf("Expected empty string form \"[]\", got %q", got)
	}
}

func TestCodeFromNibblePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for an invalid nibble")
		}
	}()
	codeFromNibble(9)
}
