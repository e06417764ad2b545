package stream

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// TestInt32LittleEndian 测试 int32 按小端写入并读回
func TestInt32LittleEndian(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, v := range []int32{0, 1, -1, 350, 0x01020304} {
		if err := w.WriteInt32(v); err != nil {
			t.Fatalf("WriteInt32(%d) error: %v", v, err)
		}
	}

	want := []byte{0x04, 0x03, 0x02, 0x01}
	if got := buf.Bytes()[16:20]; !bytes.Equal(got, want) {
		t.Errorf("0x01020304 encoded as % x, want % x", got, want)
	}

	r := NewReader(&buf)
	for _, want := range []int32{0, 1, -1, 350, 0x01020304} {
		got, err := r.ReadInt32()
		if err != nil {
			t.Fatalf("ReadInt32() error: %v", err)
		}
		if got != want {
			t.Errorf("ReadInt32() = %d, want %d", got, want)
		}
	}

	if _, err := r.ReadInt32(); err != io.EOF {
		t.Errorf("ReadInt32() at end: got %v, want io.EOF", err)
	}
}

// TestStringLayout 测试长度前缀字符串的字节布局
func TestStringLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).WriteString("go"); err != nil {
		t.Fatalf("WriteString error: %v", err)
	}

	want := []byte{2, 0, 0, 0, 'g', 'o'}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("encoded % x, want % x", buf.Bytes(), want)
	}

	got, err := NewReader(&buf).ReadString()
	if err != nil {
		t.Fatalf("ReadString error: %v", err)
	}
	if got != "go" {
		t.Errorf("ReadString() = %q, want %q", got, "go")
	}
}

// TestReadStringErrors 测试非法长度前缀与截断数据
func TestReadStringErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"negative length", []byte{0xff, 0xff, 0xff, 0xff}, ErrNegativeLength},
		{"too long", []byte{0x00, 0x00, 0x00, 0x10}, ErrStringTooLong},
		{"truncated body", []byte{4, 0, 0, 0, 'a'}, io.ErrUnexpectedEOF},
		{"truncated prefix", []byte{4, 0}, io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(bytes.NewReader(tt.data)).ReadString()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadString() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestFixedString 测试固定容量缓冲区：总是消耗 count 字节，截断到首个 NUL
func TestFixedString(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteFixedString("hello", 8); err != nil {
		t.Fatalf("WriteFixedString error: %v", err)
	}
	if err := w.WriteInt32(7); err != nil {
		t.Fatalf("WriteInt32 error: %v", err)
	}
	if buf.Len() != 12 {
		t.Fatalf("buffer length = %d, want 12", buf.Len())
	}

	r := NewReader(&buf)
	s, err := r.ReadFixedString(8)
	if err != nil {
		t.Fatalf("ReadFixedString error: %v", err)
	}
	if s != "hello" {
		t.Errorf("ReadFixedString() = %q, want %q", s, "hello")
	}
	v, err := r.ReadInt32()
	if err != nil || v != 7 {
		t.Errorf("trailing int = %d (%v), want 7", v, err)
	}
}

// TestFixedStringTruncates 测试超长文本写入时保留结尾 NUL
func TestFixedStringTruncates(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).WriteFixedString("abcdef", 4); err != nil {
		t.Fatalf("WriteFixedString error: %v", err)
	}
	s, err := NewReader(&buf).ReadFixedString(4)
	if err != nil {
		t.Fatalf("ReadFixedString error: %v", err)
	}
	if s != "abc" {
		t.Errorf("ReadFixedString() = %q, want %q", s, "abc")
	}
}
