package console

import (
	"BikeShare/src/processor"

	"github.com/go-gota/gota/dataframe"
)

// TripData 每次显示 pageSize 行原始数据，输入 y 继续，其它输入结束。
// 超过末尾后继续输入 y 只会显示空页。
func (s *Session) TripData(v *processor.View) error {
	start := s.now()
	size := s.pageSize

	s.out.Line("\n\tWould you like to see some data from the current dataset?")
	for offset := 0; ; offset += size {
		answer, err := s.prompt.Ask("Enter y or n: ")
		if err != nil {
			return err
		}
		if answer != "y" {
			break
		}

		s.out.Line("\n\tDisplaying rows %d to %d", offset+1, offset+size)
		s.out.Table(v.DF.Names(), pageRows(v.DF, offset, size))
		s.out.Separator()
		s.out.Printf("\t\n Would you like to see the next %d rows\n", size)
	}

	s.took(start)
	return nil
}

// pageRows 取 [offset, offset+size) 范围内的行，越界部分为空
func pageRows(df dataframe.DataFrame, offset, size int) [][]string {
	end := min(offset+size, df.Nrow())
	if offset >= end {
		return nil
	}

	idx := make([]int, 0, end-offset)
	for i := offset; i < end; i++ {
		idx = append(idx, i)
	}

	records := df.Subset(idx).Records()
	if len(records) < 2 {
		return nil
	}
	return records[1:]
}
