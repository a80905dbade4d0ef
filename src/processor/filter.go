package processor

import (
	"BikeShare/src/config"
	"BikeShare/src/datasource/file"
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrEmptyResultSet 筛选结果为空，报表不做统计
var ErrEmptyResultSet = errors.New("筛选结果为空")

// Filter 用户选择的城市、月份、星期
type Filter struct {
	City  string
	Month config.Month
	Day   config.Weekday
}

// View 一次会话中按 Filter 筛选后的数据
type View struct {
	City   string
	Filter Filter
	DF     dataframe.DataFrame
	Total  int // 筛选前的总行数
}

// Nrow 筛选后的行数
func (v *View) Nrow() int { return v.DF.Nrow() }

// ApplyFilter 按月份和星期筛选数据集，保持原始行顺序。
// 派生列为 NA 的行在按月份或星期筛选时被丢弃。
func ApplyFilter(ds *file.Dataset, f Filter) (*View, error) {
	df := ds.DF

	if f.Month != config.AllMonths && df.Nrow() > 0 {
		df = filterInt(df, file.ColMonth, int(f.Month))
	}

	if f.Day != config.AllDays && df.Nrow() > 0 {
		df = filterInt(df, file.ColDayOfWeek, int(f.Day))
	}

	if df.Err != nil {
		return nil, fmt.Errorf("筛选数据失败: %w", df.Err)
	}

	return &View{
		City:   ds.City,
		Filter: f,
		DF:     df,
		Total:  ds.Total,
	}, nil
}

func filterInt(df dataframe.DataFrame, col string, want int) dataframe.DataFrame {
	return df.Filter(
		dataframe.F{
			Colname:    col,
			Comparator: series.CompFunc,
			Comparando: func(el series.Element) bool {
				if el.IsNA() {
					return false
				}
				v, err := el.Int()
				return err == nil && v == want
			},
		},
	)
}
