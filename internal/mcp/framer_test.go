package mcp

import (
	"reflect"
	"testing"
)

func TestLineFramer_Feed(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   [][]string
	}{
		{
			name:   "single complete line",
			chunks: []string{"{\"a\":1}\n"},
			want:   [][]string{{"{\"a\":1}"}},
		},
		{
			name:   "two lines in one chunk",
			chunks: []string{"first\nsecond\n"},
			want:   [][]string{{"first", "second"}},
		},
		{
			name:   "line split across chunks",
			chunks: []string{"{\"method\":", "\"tools/list\"}\n"},
			want:   [][]string{nil, {"{\"method\":\"tools/list\"}"}},
		},
		{
			name:   "partial line retained",
			chunks: []string{"complete\npartial"},
			want:   [][]string{{"complete"}},
		},
		{
			name:   "crlf stripped",
			chunks: []string{"windows\r\n"},
			want:   [][]string{{"windows"}},
		},
		{
			name:   "byte at a time",
			chunks: []string{"a", "b", "\n"},
			want:   [][]string{nil, nil, {"ab"}},
		},
		{
			name:   "empty line emitted",
			chunks: []string{"\n"},
			want:   [][]string{{""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f LineFramer
			for i, chunk := range tt.chunks {
				got := f.Feed([]byte(chunk))
				if !reflect.DeepEqual(got, tt.want[i]) {
					t.Errorf("Feed(chunk %d) = %q, want %q", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestLineFramer_Pending(t *testing.T) {
	var f LineFramer
	if f.Pending() {
		t.Error("new framer should have nothing pending")
	}

	f.Feed([]byte("incomplete"))
	if !f.Pending() {
		t.Error("framer should report a buffered partial line")
	}

	f.Feed([]byte("\n"))
	if f.Pending() {
		t.Error("framer should be drained after the newline arrives")
	}
}

func TestLineFramer_ReassemblesAcrossSplits(t *testing.T) {
	// A message arriving in arbitrary pieces must come out identical to one
	// arriving whole.
	message := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"solvr_search"}}`

	var whole LineFramer
	want := whole.Feed([]byte(message + "\n"))

	var split LineFramer
	var got []string
	for _, piece := range []string{message[:10], message[10:40], message[40:] + "\n"} {
		got = append(got, split.Feed([]byte(piece))...)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("split delivery = %q, want %q", got, want)
	}
}
