package textenc

// BackOneChar 返回 s 中最后一个 UTF-8 码点的起始偏移
//
// 从末尾向前最多扫描 4 个字节，跳过 10xxxxxx 续字节。空字符串返回 0。
func BackOneChar(s string) int {
	if len(s) == 0 {
		return 0
	}
	p := len(s) - 1
	for i := 0; i < 3 && p > 0 && s[p]&0xC0 == 0x80; i++ {
		p--
	}
	return p
}
