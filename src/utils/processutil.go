package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// 辅助函数：判断DataFrame是否有某列
func HasColumn(df dataframe.DataFrame, name string) bool {
	return Contains(df.Names(), name)
}

// IsBlank 判断元素是否为空值（NA 或空字符串）
func IsBlank(el series.Element) bool {
	return el.IsNA() || strings.TrimSpace(el.String()) == ""
}

// Count 值及其出现次数
type Count[T comparable] struct {
	Value T
	Count int
}

// ValueCounts 统计每个值出现的次数，按次数降序；次数相同按首次出现顺序
func ValueCounts[T comparable](values []T) []Count[T] {
	index := make(map[T]int, len(values))
	var counts []Count[T]
	for _, v := range values {
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, Count[T]{Value: v, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Mode 返回出现次数最多的值；并列时取最先出现的值。空切片返回 ok=false
func Mode[T comparable](values []T) (value T, count int, ok bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return value, 0, false
	}
	return counts[0].Value, counts[0].Count, true
}

// Hour12 把 0-23 小时转换为 12 小时制字符串
func Hour12(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour == 12:
		return "12 PM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// SecondsToHMS 把秒数转换为 周/天/小时/分钟/秒 的可读字符串。
// 为 0 的单位省略；总秒数不超过 59 时只显示秒。
func SecondsToHMS(totalSeconds int) string {
	minutes, seconds := totalSeconds/60, totalSeconds%60
	hours, minutes := minutes/60, minutes%60
	days, hours := hours/24, hours%24
	weeks, days := days/7, days%7

	var parts []string
	if weeks > 0 {
		parts = append(parts, fmt.Sprintf("%d weeks", weeks))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d days", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minutes", minutes))
	}
	if seconds > 0 || totalSeconds <= 59 {
		parts = append(parts, fmt.Sprintf("%d seconds", seconds))
	}
	return strings.Join(parts, ", ")
}

var titleCaser = cases.Title(language.English)

// Title 首字母大写，如 "new york city" -> "New York City"
func Title(s string) string {
	return titleCaser.String(s)
}

// 支持的时间格式，秒后的小数部分 time.Parse 会自动接受
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"01/02/2006 15:04",
	"2006-01-02",
}

// ParseTime 依次尝试多种格式解析时间字符串
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("时间为空")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析时间 %q", s)
}

// SaveToExcel 将DataFrame保存为Excel文件
func SaveToExcel(df dataframe.DataFrame, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"

	// Records 第一行为列名
	for rowIdx, record := range df.Records() {
		for colIdx, val := range record {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return fmt.Errorf("写入单元格 %s 失败: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("保存Excel文件失败: %w", err)
	}
	return nil
}
