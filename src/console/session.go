package console

import (
	"BikeShare/src/config"
	"BikeShare/src/datasource/file"
	"BikeShare/src/processor"
	"BikeShare/src/utils"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DatasetSource 按城市提供数据集，bool 表示是否命中缓存
type DatasetSource interface {
	Load(city string) (*file.Dataset, bool, error)
}

// Logger 会话使用的日志接口，由 storage.Logger 实现
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// Session 一次交互会话：选择筛选条件 -> 加载 -> 筛选 -> 报表 -> 浏览 -> 是否重新开始
type Session struct {
	prompt    *Prompter
	out       *Printer
	source    DatasetSource
	logger    Logger
	pageSize  int
	exportDir string
	now       func() time.Time
}

func NewSession(in io.Reader, out io.Writer, source DatasetSource, logger Logger, cfg *config.Config) *Session {
	printer := NewPrinter(out)
	return &Session{
		prompt:    NewPrompter(in, printer),
		out:       printer,
		source:    source,
		logger:    logger,
		pageSize:  cfg.PageSize,
		exportDir: cfg.ExportDir,
		now:       time.Now,
	}
}

// Run 循环执行，直到用户不再输入 yes 或输入结束
func (s *Session) Run() error {
	for {
		if err := s.RunOnce(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		restart, err := s.prompt.Ask("\nWould you like to restart? Enter yes or no.\n")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if restart != "yes" {
			s.logger.Info("会话结束")
			return nil
		}
	}
}

// RunOnce 执行一轮完整流程。数据不可用时输出提示并返回 nil，只有输入错误才返回 error
func (s *Session) RunOnce() error {
	f, err := s.prompt.GetFilters()
	if err != nil {
		return err
	}
	s.logger.Info(fmt.Sprintf("筛选条件: city=%s month=%s day=%s", f.City, f.Month, f.Day))

	view, err := s.load(f)
	if err != nil {
		s.logger.Error(fmt.Sprintf("加载 %s 数据失败: %v", f.City, err))
		s.out.Line("\tCould not load data for %s: %v", utils.Title(f.City), err)
		s.out.Separator()
		return nil
	}

	s.runReport("infos", func() { s.infos(view) })
	s.export(view)

	// 报表之间相互独立，某一个失败不影响后续报表
	s.runReport("time", func() { s.timeStats(view) })
	s.runReport("station", func() { s.stationStats(view) })
	s.runReport("duration", func() { s.tripDurationStats(view) })
	s.runReport("user", func() { s.userStats(view) })

	return s.TripData(view)
}

func (s *Session) load(f processor.Filter) (*processor.View, error) {
	start := s.now()

	ds, cached, err := s.source.Load(f.City)
	if err != nil {
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("加载 %s 数据 %d 行 (缓存: %v)", ds.City, ds.Total, cached))
	if ds.BadTimes > 0 {
		s.logger.Warning(fmt.Sprintf("%s 有 %d 行开始时间无法解析，已排除在时间统计之外", ds.City, ds.BadTimes))
	}

	view, err := processor.ApplyFilter(ds, f)
	if err != nil {
		return nil, err
	}

	s.took(start)
	return view, nil
}

// runReport 捕获报表中的 panic，记录日志后继续
func (s *Session) runReport(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(fmt.Sprintf("报表 %s 失败: %v", name, r))
			s.out.Line("\tThe %s report failed: %v", name, r)
			s.out.Separator()
		}
	}()
	fn()
}

func (s *Session) took(start time.Time) {
	s.out.Right("[This took %.3f seconds.]", s.now().Sub(start).Seconds())
	s.out.Separator()
}

func (s *Session) reportError(err error) {
	if errors.Is(err, processor.ErrEmptyResultSet) {
		s.out.Line("\tNo data available for the selected filters.")
		return
	}
	s.out.Line("\tError: %v", err)
}

func (s *Session) export(v *processor.View) {
	if s.exportDir == "" {
		return
	}
	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		s.logger.Error(fmt.Sprintf("创建导出目录失败: %v", err))
		return
	}

	name := fmt.Sprintf("%s_%s_%s.xlsx", strings.ReplaceAll(v.City, " ", "_"), v.Filter.Month, v.Filter.Day)
	filePath := filepath.Join(s.exportDir, name)
	if err := utils.SaveToExcel(v.DF, filePath); err != nil {
		s.logger.Error(fmt.Sprintf("导出筛选结果失败: %v", err))
		return
	}
	s.logger.Info("筛选结果已导出到: " + filePath)
	s.out.Line("\tFiltered data saved to: %s", filePath)
	s.out.Separator()
}
