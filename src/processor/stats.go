package processor

import (
	"BikeShare/src/config"
	"BikeShare/src/datasource/file"
	"BikeShare/src/utils"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"
)

// TimeResult 最常见的出行时间
type TimeResult struct {
	Month   string
	Weekday string
	Hour    string
}

// StationResult 最热门的站点与线路
type StationResult struct {
	StartStation string
	EndStation   string
	TripStart    string
	TripEnd      string
	TripCount    int
}

// DurationResult 行程时长（秒，截断为整数）
type DurationResult struct {
	Total    int
	Mean     int
	TotalHMS string
	MeanHMS  string
}

// UserResult 用户统计；HasGender/HasBirthYear 表示数据表是否有该列
type UserResult struct {
	UserTypes []utils.Count[string]

	HasGender bool
	Genders   []utils.Count[string]

	HasBirthYear bool
	BirthYears   int // 有效出生年份个数
	Earliest     int
	MostRecent   int
	MostCommon   int
}

// InfoResult 数据集概况
type InfoResult struct {
	City          string
	Month         string
	Day           string
	Total         int
	Rows          int
	StartStations int
	EndStations   int
}

type tripPair struct {
	Start string
	End   string
}

// TimeStats 最常见的月份、星期和开始小时。开始时间无法解析的行不参与统计
func TimeStats(v *View) (TimeResult, error) {
	if v.Nrow() == 0 {
		return TimeResult{}, ErrEmptyResultSet
	}

	month, _, ok := utils.Mode(validInts(v.DF.Col(file.ColMonth)))
	if !ok {
		return TimeResult{}, fmt.Errorf("%w: 没有可解析的开始时间", ErrEmptyResultSet)
	}
	day, _, _ := utils.Mode(validInts(v.DF.Col(file.ColDayOfWeek)))
	hour, _, _ := utils.Mode(validInts(v.DF.Col(file.ColHour)))

	return TimeResult{
		Month:   config.MonthName(month),
		Weekday: config.WeekdayName(day),
		Hour:    utils.Hour12(hour),
	}, nil
}

// StationStats 最常用的起点、终点以及最常见的起终点组合
func StationStats(v *View) (StationResult, error) {
	if v.Nrow() == 0 {
		return StationResult{}, ErrEmptyResultSet
	}

	starts := v.DF.Col(file.ColStartStation)
	ends := v.DF.Col(file.ColEndStation)

	res := StationResult{}
	res.StartStation, _, _ = utils.Mode(validStrings(starts))
	res.EndStation, _, _ = utils.Mode(validStrings(ends))

	pairs := make([]tripPair, 0, starts.Len())
	for i := 0; i < starts.Len(); i++ {
		s, e := starts.Elem(i), ends.Elem(i)
		if utils.IsBlank(s) || utils.IsBlank(e) {
			continue
		}
		pairs = append(pairs, tripPair{Start: s.String(), End: e.String()})
	}

	pair, count, ok := utils.Mode(pairs)
	if !ok {
		return StationResult{}, fmt.Errorf("%w: 没有有效的站点数据", ErrEmptyResultSet)
	}
	res.TripStart, res.TripEnd, res.TripCount = pair.Start, pair.End, count
	return res, nil
}

// TripDurationStats 总时长与平均时长
func TripDurationStats(v *View) (DurationResult, error) {
	if v.Nrow() == 0 {
		return DurationResult{}, ErrEmptyResultSet
	}

	durations := validFloats(v.DF.Col(file.ColTripDuration))
	if len(durations) == 0 {
		return DurationResult{}, fmt.Errorf("%w: 没有有效的行程时长", ErrEmptyResultSet)
	}

	var sum float64
	for _, d := range durations {
		sum += d
	}
	total := int(sum)
	mean := int(sum / float64(len(durations)))

	return DurationResult{
		Total:    total,
		Mean:     mean,
		TotalHMS: utils.SecondsToHMS(total),
		MeanHMS:  utils.SecondsToHMS(mean),
	}, nil
}

// UserStats 用户类型、性别（如有）、出生年份（如有）统计
func UserStats(v *View) (UserResult, error) {
	if v.Nrow() == 0 {
		return UserResult{}, ErrEmptyResultSet
	}

	res := UserResult{
		UserTypes: utils.ValueCounts(validStrings(v.DF.Col(file.ColUserType))),
	}

	if utils.HasColumn(v.DF, file.ColGender) {
		res.HasGender = true
		res.Genders = utils.ValueCounts(validStrings(v.DF.Col(file.ColGender)))
	}

	if utils.HasColumn(v.DF, file.ColBirthYear) {
		res.HasBirthYear = true
		years := make([]int, 0, v.Nrow())
		for _, f := range validFloats(v.DF.Col(file.ColBirthYear)) {
			years = append(years, int(f))
		}
		res.BirthYears = len(years)
		if len(years) > 0 {
			res.Earliest, res.MostRecent = years[0], years[0]
			for _, y := range years[1:] {
				res.Earliest = min(res.Earliest, y)
				res.MostRecent = max(res.MostRecent, y)
			}
			res.MostCommon, _, _ = utils.Mode(years)
		}
	}
	return res, nil
}

// Infos 数据集概况：城市、筛选条件、行数与站点数
func Infos(v *View) InfoResult {
	res := InfoResult{
		City:  v.City,
		Month: v.Filter.Month.String(),
		Day:   v.Filter.Day.String(),
		Total: v.Total,
		Rows:  v.Nrow(),
	}
	if res.Rows > 0 {
		res.StartStations = len(utils.ValueCounts(validStrings(v.DF.Col(file.ColStartStation))))
		res.EndStations = len(utils.ValueCounts(validStrings(v.DF.Col(file.ColEndStation))))
	}
	return res
}

// validInts 跳过 NA 的整数列值
func validInts(s series.Series) []int {
	out := make([]int, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		el := s.Elem(i)
		if el.IsNA() {
			continue
		}
		if n, err := el.Int(); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// validStrings 跳过空值的字符串列值
func validStrings(s series.Series) []string {
	out := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		el := s.Elem(i)
		if utils.IsBlank(el) {
			continue
		}
		out = append(out, el.String())
	}
	return out
}

// validFloats 把字符串列解析为数值，跳过空值和无法解析的值
func validFloats(s series.Series) []float64 {
	out := make([]float64, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		el := s.Elem(i)
		if utils.IsBlank(el) {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(el.String()), 64)
		if err != nil || math.IsNaN(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}
