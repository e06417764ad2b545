// Package stream 提供 GUI 数据文件与存档共用的二进制读写工具
//
// 所有整数均为小端 32 位有符号数；字符串为 int32 字节长度前缀 + 原始字节（无结束符）。
package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxStringLength 长度前缀字符串允许的最大字节数
const MaxStringLength = 1 << 20

var (
	// ErrNegativeLength 字符串长度前缀为负数
	ErrNegativeLength = errors.New("stream: negative string length")
	// ErrStringTooLong 字符串长度前缀超过 MaxStringLength
	ErrStringTooLong = errors.New("stream: string too long")
)

// Reader 小端二进制读取器
type Reader struct {
	r   io.Reader
	buf [4]byte
}

// NewReader 包装一个 io.Reader
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadInt32 读取一个小端 int32
func (r *Reader) ReadInt32() (int32, error) {
	if _, err := io.ReadFull(r.r, r.buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(r.buf[:])), nil
}

// ReadString 读取长度前缀字符串
//
// 返回的字符串按原始字节保存，不做任何编码校验。
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", ErrNegativeLength
	}
	if n > MaxStringLength {
		return "", fmt.Errorf("%w: %d bytes", ErrStringTooLong, n)
	}
	if n == 0 {
		return "", nil
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r.r, data); err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadFixedString 读取固定容量的 NUL 结尾缓冲区
//
// 总是消耗 count 个字节，返回第一个 NUL 之前的内容。
func (r *Reader) ReadFixedString(count int) (string, error) {
	if count <= 0 {
		return "", nil
	}
	data := make([]byte, count)
	if _, err := io.ReadFull(r.r, data); err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return string(data), nil
}

// Writer 小端二进制写入器
type Writer struct {
	w   io.Writer
	buf [4]byte
}

// NewWriter 包装一个 io.Writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteInt32 写入一个小端 int32
func (w *Writer) WriteInt32(v int32) error {
	binary.LittleEndian.PutUint32(w.buf[:], uint32(v))
	_, err := w.w.Write(w.buf[:])
	return err
}

// WriteString 写入长度前缀字符串
func (w *Writer) WriteString(s string) error {
	if len(s) > MaxStringLength {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	if err := w.WriteInt32(int32(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	_, err := io.WriteString(w.w, s)
	return err
}

// WriteFixedString 写入固定容量的 NUL 填充缓冲区（超长部分被截断，至少保留一个 NUL）
func (w *Writer) WriteFixedString(s string, count int) error {
	if count <= 0 {
		return nil
	}
	data := make([]byte, count)
	copy(data[:count-1], s)
	_, err := w.w.Write(data)
	return err
}
