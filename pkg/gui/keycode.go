package gui

// KeyCode 游戏键码；可打印字符的键码即其 ASCII 值
type KeyCode int

const (
	KeyNone      KeyCode = 0
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyReturn    KeyCode = 13
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = 32
)

// KeyInput 一次按键事件
type KeyInput struct {
	Key   KeyCode // 键码
	UChar rune    // 字符码点，0 表示非文本事件
	Text  string  // 该字符的 UTF-8 字节
}
