// Package textenc 提供 GUI 文本缓冲区使用的编码工具
//
// 文本缓冲区是字节序列，其含义取决于进程级文本格式（UTF-8 或单字节旧格式），
// 因此这里的函数都按字节处理 string，不假设其为合法 UTF-8。
package textenc

import (
	"golang.org/x/text/encoding/charmap"
)

// win1251High Windows-1251 高半区 0x80..0xBF 对应的 Unicode 码点
// 索引 k 对应字节 0x80+k
var win1251High = [64]rune{
	0x0402, 0x0403, 0x201A, 0x0453, 0x201E, 0x2026, 0x2020, 0x2021,
	0x20AC, 0x2030, 0x0409, 0x2039, 0x040A, 0x040C, 0x040B, 0x040F,
	0x0452, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x007F, 0x2122, 0x0459, 0x203A, 0x045A, 0x045C, 0x045B, 0x045F,
	0x00A0, 0x040E, 0x045E, 0x0408, 0x00A4, 0x0490, 0x00A6, 0x00A7,
	0x0401, 0x00A9, 0x0404, 0x00AB, 0x00AC, 0x00AD, 0x00AE, 0x0407,
	0x00B0, 0x00B1, 0x0406, 0x0456, 0x0491, 0x00B5, 0x00B6, 0x00B7,
	0x0451, 0x2116, 0x0454, 0x00BB, 0x0458, 0x0405, 0x0455, 0x0457,
}

// Win1251HighTable 返回高半区映射表的副本
func Win1251HighTable() [64]rune {
	return win1251High
}

// UTF8ToWin1251 将 UTF-8 字节流有损转换为 Windows-1251 字节
//
// 规则：
//   - U+0000..U+007F 原样输出（U+0000 被丢弃）
//   - U+0410..U+042F / U+0430..U+044F 映射到 0xC0..0xFF
//   - 其余码点在高半区表中查找，找不到输出 '?'
//   - 非法序列（错误的首字节、续字节不在 0x80..0xBF、截断）整体跳过
//
// 返回值即转换结果，不带 NUL 结束符。
func UTF8ToWin1251(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		cp, n := decodeRune(s[i:])
		i += n
		if cp < 0 {
			continue
		}
		if b := runeToWin1251(cp); b != 0 {
			out = append(out, b)
		}
	}
	return string(out)
}

// decodeRune 解码一个码点，返回码点与消耗的字节数；非法序列返回 -1
//
// 续字节非法时不消耗该字节，它会作为下一个序列的首字节重新解析。
func decodeRune(s string) (rune, int) {
	lead := s[0]
	var cp rune
	var more int
	switch {
	case lead >= 0xF8:
		return -1, 1
	case lead >= 0xF0:
		cp, more = rune(lead&0x07), 3
	case lead >= 0xE0:
		cp, more = rune(lead&0x0F), 2
	case lead >= 0xC0:
		cp, more = rune(lead&0x1F), 1
	case lead <= 0x7F:
		return rune(lead), 1
	default:
		// 孤立的续字节
		return -1, 1
	}

	n := 1
	for k := 0; k < more; k++ {
		if n >= len(s) {
			return -1, n
		}
		c := s[n]
		if c < 0x80 || c > 0xBF {
			return -1, n
		}
		cp = cp<<6 | rune(c&0x3F)
		n++
	}
	return cp, n
}

// runeToWin1251 单个码点转 Windows-1251 字节；返回 0 表示不输出
func runeToWin1251(cp rune) byte {
	switch {
	case cp <= 0x7F:
		return byte(cp)
	case cp >= 0x0410 && cp <= 0x042F:
		return byte(cp - 0x0410 + 0xC0)
	case cp >= 0x0430 && cp <= 0x044F:
		return byte(cp - 0x0430 + 0xE0)
	}
	for k, u := range win1251High {
		if u == cp {
			return byte(0x80 + k)
		}
	}
	return '?'
}

// Win1251ToUTF8 将旧格式的 Windows-1251 字节解码为 UTF-8，用于日志与工具输出
func Win1251ToUTF8(s string) (string, error) {
	return charmap.Windows1251.NewDecoder().String(s)
}
