package console

import (
	"BikeShare/src/config"
	"BikeShare/src/processor"
	"BikeShare/src/utils"
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter 交互式输入；无效输入会一直重新提示，没有重试上限
type Prompter struct {
	in  *bufio.Scanner
	out *Printer
}

func NewPrompter(in io.Reader, out *Printer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// normalize 统一的输入规范化：去掉首尾空白并转小写
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ask 输出提示并读取一行；输入结束时返回 io.EOF
func (p *Prompter) Ask(prompt string) (string, error) {
	p.out.Printf("%s", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return normalize(p.in.Text()), nil
}

// askUntil 重复提示直到 accept 返回 true
func (p *Prompter) askUntil(prompt string, accept func(string) bool) (string, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return "", err
		}
		if accept(answer) {
			return answer, nil
		}
	}
}

// GetCity 读取城市名称
func (p *Prompter) GetCity() (string, error) {
	return p.askUntil("\n Enter the name of the city: ", config.IsCity)
}

// GetMonth 读取月份名称或 all
func (p *Prompter) GetMonth() (config.Month, error) {
	answer, err := p.askUntil(" Enter the name of the month or enter all:  ", func(s string) bool {
		_, ok := config.ParseMonth(s)
		return ok
	})
	if err != nil {
		return config.AllMonths, err
	}
	m, _ := config.ParseMonth(answer)
	return m, nil
}

// GetDay 读取星期名称或 all
func (p *Prompter) GetDay() (config.Weekday, error) {
	answer, err := p.askUntil(" Enter the name of the day or enter all:  ", func(s string) bool {
		_, ok := config.ParseWeekday(s)
		return ok
	})
	if err != nil {
		return config.AllDays, err
	}
	d, _ := config.ParseWeekday(answer)
	return d, nil
}

// GetFilters 输出欢迎信息和菜单，依次读取城市、月份、星期
func (p *Prompter) GetFilters() (processor.Filter, error) {
	p.out.Println("\n\t\tHello! Let's explore some US bikeshare data!")
	p.Menu()

	var f processor.Filter
	var err error
	if f.City, err = p.GetCity(); err != nil {
		return f, err
	}
	if f.Month, err = p.GetMonth(); err != nil {
		return f, err
	}
	if f.Day, err = p.GetDay(); err != nil {
		return f, err
	}

	p.out.Separator()
	return f, nil
}

// Menu 三列显示可选城市、月份、星期
func (p *Prompter) Menu() {
	cities := config.Cities()
	months := config.MonthNames()
	days := config.WeekdayNames()

	p.out.Columns("CITIES", "MONTHS", "DAYS OF THE WEEK")
	for i := 0; i < len(days); i++ {
		p.out.Columns(
			menuItem(cities, i),
			menuItem(months, i),
			menuItem(days, i),
		)
	}
}

// menuItem 编号显示，"all" 显示为 "a. all"
func menuItem(items []string, i int) string {
	if i >= len(items) {
		return " "
	}
	if items[i] == config.All {
		return "a. all"
	}
	return fmt.Sprintf("%d. %s", i+1, utils.Title(items[i]))
}
