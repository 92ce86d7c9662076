package settings

// Palette — ANSI-последовательности для оформления вывода.
type Palette struct {
	Title  string
	Accent string
	Muted  string
	Error  string
	Reset  string
}

var (
	Light = Palette{Title: "\033[1;34m", Accent: "\033[35m", Muted: "\033[90m", Error: "\033[31m", Reset: "\033[0m"}
	Dark  = Palette{Title: "\033[1;96m", Accent: "\033[93m", Muted: "\033[37m", Error: "\033[91m", Reset: "\033[0m"}
	// Plain — без цвета (NO_COLOR, вывод не в терминал, тесты).
	Plain = Palette{}
)

// Paint оборачивает s в цвет code, если палитра цветная.
func (p Palette) Paint(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + p.Reset
}
