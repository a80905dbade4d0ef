package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	lineWidth  = 80 // 统计行左对齐宽度
	timerWidth = 50 // 耗时行右对齐宽度
	menuWidth  = 30 // 菜单列宽
	sepWidth   = 60
)

var (
	leftStyle  = lipgloss.NewStyle().Width(lineWidth)
	rightStyle = lipgloss.NewStyle().Width(timerWidth).Align(lipgloss.Right)
	menuStyle  = lipgloss.NewStyle().Width(menuWidth)
	tableStyle = lipgloss.NewStyle().Padding(0, 1)
)

// Printer 控制台输出，负责对齐与分隔线
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// pad 不足宽度时补齐；超出宽度的内容原样输出，不换行。
// 制表符先展开为 4 个空格，与 lipgloss 渲染时的宽度一致
func pad(style lipgloss.Style, width int, s string) string {
	s = strings.ReplaceAll(s, "\t", "    ")
	if lipgloss.Width(s) >= width {
		return s
	}
	return style.Render(s)
}

// Println 原样输出一行
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Printf 原样格式化输出
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Line 左对齐输出一行（宽度 80）
func (p *Printer) Line(format string, a ...any) {
	fmt.Fprintln(p.w, pad(leftStyle, lineWidth, fmt.Sprintf(format, a...)))
}

// Right 右对齐输出一行（宽度 50）
func (p *Printer) Right(format string, a ...any) {
	fmt.Fprintln(p.w, pad(rightStyle, timerWidth, fmt.Sprintf(format, a...)))
}

// Separator 输出分隔线
func (p *Printer) Separator() {
	fmt.Fprintln(p.w, strings.Repeat("=", sepWidth))
}

// Columns 按固定列宽输出多列菜单
func (p *Printer) Columns(cols ...string) {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = pad(menuStyle, menuWidth, c)
	}
	fmt.Fprintln(p.w, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// Table 以表格形式输出行数据
func (p *Printer) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style { return tableStyle })
	fmt.Fprintln(p.w, t.Render())
}
