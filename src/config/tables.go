package config

import (
	"strings"
	"time"
)

// 固定查找表。数组不导出，只通过访问函数返回副本，运行期间不可修改。

var cities = [...]string{"chicago", "new york city", "washington"}

var defaultCityFiles = [...]string{"chicago.csv", "new_york_city.csv", "washington.csv"}

// 数据源只覆盖上半年，月份筛选只支持一月到六月
var monthNames = [...]string{"january", "february", "march", "april", "may", "june"}

var weekdayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// All 表示不按该维度筛选
const All = "all"

// Cities 返回支持的城市列表
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities[:])
	return out
}

// IsCity 判断是否为支持的城市
func IsCity(name string) bool {
	for _, c := range cities {
		if c == name {
			return true
		}
	}
	return false
}

// DefaultCityData 返回城市到数据文件名的默认映射
func DefaultCityData() map[string]string {
	m := make(map[string]string, len(cities))
	for i, c := range cities {
		m[c] = defaultCityFiles[i]
	}
	return m
}

// Month 月份筛选值，0 表示全部
type Month int

const AllMonths Month = 0

// ParseMonth 解析月份名称（已规范化的小写输入）
func ParseMonth(s string) (Month, bool) {
	if s == All {
		return AllMonths, true
	}
	for i, name := range monthNames {
		if name == s {
			return Month(i + 1), true
		}
	}
	return AllMonths, false
}

func (m Month) String() string {
	if m == AllMonths {
		return All
	}
	return MonthName(int(m))
}

// MonthNames 返回可选月份（含 all）
func MonthNames() []string {
	out := make([]string, 0, len(monthNames)+1)
	out = append(out, monthNames[:]...)
	return append(out, All)
}

// MonthName 把 1-12 的月份数字转换为名称。
// 一到六月取自筛选表，其余月份筛选表无法表示，退回到日历名称。
func MonthName(n int) string {
	if n >= 1 && n <= len(monthNames) {
		return monthNames[n-1]
	}
	if n >= 1 && n <= 12 {
		return strings.ToLower(time.Month(n).String())
	}
	return ""
}

// Weekday 星期筛选值，Monday=0，-1 表示全部
type Weekday int

const AllDays Weekday = -1

// ParseWeekday 解析星期名称（已规范化的小写输入）
func ParseWeekday(s string) (Weekday, bool) {
	if s == All {
		return AllDays, true
	}
	for i, name := range weekdayNames {
		if name == s {
			return Weekday(i), true
		}
	}
	return AllDays, false
}

func (d Weekday) String() string {
	if d == AllDays {
		return All
	}
	return WeekdayName(int(d))
}

// WeekdayNames 返回可选星期（含 all）
func WeekdayNames() []string {
	out := make([]string, 0, len(weekdayNames)+1)
	out = append(out, weekdayNames[:]...)
	return append(out, All)
}

// WeekdayName 0=monday ... 6=sunday
func WeekdayName(i int) string {
	if i < 0 || i >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[i]
}

// MondayIndex 把 time.Weekday(Sunday=0) 转为 Monday=0 的索引
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
