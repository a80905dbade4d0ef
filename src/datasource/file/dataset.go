package file

import (
	"BikeShare/src/config"
	"BikeShare/src/utils"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// 原始数据列名
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// 派生列名，由 Start Time 计算
const (
	ColMonth     = "month"       // 1-12
	ColDayOfWeek = "day_of_week" // 0=Monday
	ColHour      = "hour"        // 0-23
)

var requiredColumns = []string{ColStartTime, ColStartStation, ColEndStation, ColTripDuration, ColUserType}

// Dataset 某个城市的全部行程数据（只读）
type Dataset struct {
	City     string
	DF       dataframe.DataFrame
	Total    int // 未筛选的总行数
	BadTimes int // Start Time 无法解析的行数，这些行的派生列为 NA
}

// HasGender 数据表是否包含性别列
func (d *Dataset) HasGender() bool { return utils.HasColumn(d.DF, ColGender) }

// HasBirthYear 数据表是否包含出生年份列
func (d *Dataset) HasBirthYear() bool { return utils.HasColumn(d.DF, ColBirthYear) }

// LoadCity 读取城市数据并计算派生列
func LoadCity(cfg *config.Config, city string) (*Dataset, error) {
	filePath, ok := cfg.CityFile(city)
	if !ok {
		return nil, fmt.Errorf("%w: 城市 %q 未配置数据文件", ErrDataUnavailable, city)
	}

	df, err := ReadTable(filePath)
	if err != nil {
		return nil, err
	}
	return NewDataset(city, df)
}

// NewDataset 校验列并添加 month/day_of_week/hour 派生列。
// Start Time 解析失败的行保留，派生列置为 NA。
func NewDataset(city string, df dataframe.DataFrame) (*Dataset, error) {
	for _, col := range requiredColumns {
		if !utils.HasColumn(df, col) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	starts := df.Col(ColStartTime)
	n := starts.Len()
	months := make([]string, n)
	days := make([]string, n)
	hours := make([]string, n)

	bad := 0
	for i := 0; i < n; i++ {
		t, err := parseStartTime(starts.Elem(i))
		if err != nil {
			months[i], days[i], hours[i] = "NaN", "NaN", "NaN"
			bad++
			continue
		}
		months[i] = strconv.Itoa(int(t.Month()))
		days[i] = strconv.Itoa(config.MondayIndex(t.Weekday()))
		hours[i] = strconv.Itoa(t.Hour())
	}

	df = df.Mutate(series.New(months, series.Int, ColMonth)).
		Mutate(series.New(days, series.Int, ColDayOfWeek)).
		Mutate(series.New(hours, series.Int, ColHour))
	if df.Err != nil {
		return nil, fmt.Errorf("添加派生列失败: %w", df.Err)
	}

	return &Dataset{
		City:     city,
		DF:       df,
		Total:    n,
		BadTimes: bad,
	}, nil
}

var excelSerial = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// parseStartTime 先按文本格式解析，xlsx 中的日期序列号再按 Excel 规则换算
func parseStartTime(el series.Element) (time.Time, error) {
	if utils.IsBlank(el) {
		return time.Time{}, fmt.Errorf("时间为空")
	}
	s := el.String()
	if t, err := utils.ParseTime(s); err == nil {
		return t, nil
	}
	if excelSerial.MatchString(s) {
		v, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return excelToTime(v), nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析时间 %q", s)
}

// excelToTime Excel日期序列号转time.Time，以1899-12-30为起点
func excelToTime(excelDays float64) time.Time {
	base := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	days := int(excelDays)
	fraction := excelDays - float64(days)

	// 四舍五入到秒，避免浮点误差把 09:00:00 变成 08:59:59
	secs := int64(fraction*86400 + 0.5)
	return base.AddDate(0, 0, days).Add(time.Duration(secs) * time.Second)
}
