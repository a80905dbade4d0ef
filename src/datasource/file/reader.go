// reader.go
package file

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/tealeg/xlsx"
)

// ErrDataUnavailable 城市对应的数据文件找不到
var ErrDataUnavailable = errors.New("数据文件不可用")

// ErrMissingColumn 数据表缺少必需的列
var ErrMissingColumn = errors.New("数据表缺少必需列")

// ReadTable 按扩展名读取 csv 或 xlsx，所有列均按字符串读入
func ReadTable(filePath string) (dataframe.DataFrame, error) {
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dataframe.New(), fmt.Errorf("%w: %s", ErrDataUnavailable, filePath)
		}
		return dataframe.New(), fmt.Errorf("读取数据文件信息失败: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx":
		return ReadXLSX(filePath, "")
	default:
		return ReadCSV(filePath)
	}
}

// ReadCSV 读取CSV为DataFrame，只有标题行时返回0行的DataFrame
func ReadCSV(filePath string) (dataframe.DataFrame, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dataframe.New(), fmt.Errorf("%w: %s", ErrDataUnavailable, filePath)
		}
		return dataframe.New(), fmt.Errorf("打开CSV失败: %w", err)
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		records, csvErr := csv.NewReader(bytes.NewReader(data)).ReadAll()
		if csvErr == nil && len(records) == 1 {
			return emptyFrame(records[0])
		}
		return dataframe.New(), fmt.Errorf("解析CSV失败 %s: %w", filePath, df.Err)
	}
	return df, nil
}

// emptyFrame 按标题行构造0行的DataFrame
func emptyFrame(headers []string) (dataframe.DataFrame, error) {
	columns := make([]series.Series, len(headers))
	for i, name := range headers {
		columns[i] = series.New([]string{}, series.String, name)
	}

	df := dataframe.New(columns...)
	if df.Err != nil {
		return dataframe.New(), fmt.Errorf("构造空数据表失败: %w", df.Err)
	}
	return df, nil
}

// ReadXLSX 读取xlsx工作表为DataFrame，sheetName为空时取第一个工作表
func ReadXLSX(filePath, sheetName string) (dataframe.DataFrame, error) {
	xlFile, err := xlsx.OpenFile(filePath)
	if err != nil {
		return dataframe.New(), fmt.Errorf("xlsx open file false: %w", err)
	}

	if len(xlFile.Sheets) == 0 {
		return dataframe.New(), fmt.Errorf("excel文件中没有工作表: %s", filePath)
	}

	sheet := xlFile.Sheets[0]
	if sheetName != "" {
		s, ok := xlFile.Sheet[sheetName]
		if !ok {
			return dataframe.New(), fmt.Errorf("工作表 %q 不存在", sheetName)
		}
		sheet = s
	}

	records := convertSheetToRecords(sheet)
	if len(records) == 0 {
		return dataframe.New(), fmt.Errorf("工作表 %q 没有数据", sheet.Name)
	}
	if len(records) == 1 {
		return emptyFrame(records[0])
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.New(), fmt.Errorf("转换为dataframe失败: %w", df.Err)
	}
	return df, nil
}

// convertSheetToRecords 第一行为标题行，行长度按标题补齐
func convertSheetToRecords(sheet *xlsx.Sheet) [][]string {
	if sheet == nil || len(sheet.Rows) == 0 {
		return nil
	}

	var headers []string
	for _, cell := range sheet.Rows[0].Cells {
		headers = append(headers, cell.Value)
	}

	records := make([][]string, 0, len(sheet.Rows))
	records = append(records, headers)
	for _, row := range sheet.Rows[1:] {
		if row == nil {
			continue
		}
		record := make([]string, len(headers))
		for i, cell := range row.Cells {
			if i < len(headers) {
				record[i] = cell.Value
			}
		}
		records = append(records, record)
	}
	return records
}
