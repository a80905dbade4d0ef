package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config 结构体定义了应用程序的配置结构
type Config struct {
	DataDir        string            `json:"data_dir" yaml:"data_dir" validate:"required"`     // 数据文件目录
	CityData       map[string]string `json:"city_data" yaml:"city_data" validate:"required"`   // 城市 -> 数据文件名
	LogName        string            `json:"log_name" yaml:"log_name" validate:"required"`     // 日志文件
	LogMaxSize     string            `json:"log_max_size" yaml:"log_max_size"`                 // 日志轮转大小，如 "10 * 1024 * 1024"
	RotateInterval Duration          `json:"rotate_interval" yaml:"rotate_interval"`           // 检查日志轮转的间隔
	PageSize       int               `json:"page_size" yaml:"page_size" validate:"gt=0"`       // 浏览原始数据每页行数
	ExportDir      string            `json:"export_dir" yaml:"export_dir"`                     // 非空时导出筛选结果为xlsx
	Watch          bool              `json:"watch" yaml:"watch"`                               // 监控数据文件变化
}

var (
	once     sync.Once
	instance *Config
	loadErr  error
)

// Default 返回默认配置
func Default() *Config {
	return &Config{
		DataDir:        ".",
		CityData:       DefaultCityData(),
		LogName:        "bikeshare.log",
		LogMaxSize:     "10 * 1024 * 1024",
		RotateInterval: Duration(time.Minute),
		PageSize:       5,
		Watch:          true,
	}
}

// LoadConfig 只加载一次配置；文件不存在时使用默认配置
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		instance, loadErr = loadConfig(path)
	})
	return instance, loadErr
}

func loadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 解码会合并到已有map，先清空再回填默认值
	cfg.CityData = nil
	if err := parseConfig(path, data, cfg); err != nil {
		return nil, err
	}
	if cfg.CityData == nil {
		cfg.CityData = DefaultCityData()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseConfig(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("解析YAML配置失败: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("解析JSON配置失败: %w", err)
		}
	}
	return nil
}

// Validate 校验配置字段与城市映射
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("配置校验失败: %w", err)
	}

	var errs []error
	for city, file := range c.CityData {
		if !IsCity(city) {
			errs = append(errs, fmt.Errorf("不支持的城市 %q", city))
		}
		if file == "" {
			errs = append(errs, fmt.Errorf("城市 %q 未配置数据文件", city))
		}
	}
	return combineErrors(errs)
}

// CityFile 返回城市对应数据文件的完整路径
func (c *Config) CityFile(city string) (string, bool) {
	file, ok := c.CityData[city]
	if !ok {
		return "", false
	}
	if filepath.IsAbs(file) {
		return file, true
	}
	return filepath.Join(c.DataDir, file), true
}

// CityForFile 根据文件路径反查城市
func (c *Config) CityForFile(path string) (string, bool) {
	clean := filepath.Clean(path)
	for city := range c.CityData {
		if p, _ := c.CityFile(city); filepath.Clean(p) == clean {
			return city, true
		}
	}
	return "", false
}

func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	msg := "配置加载遇到多个错误:"
	for _, err := range errs {
		msg = fmt.Sprintf("%s\n- %v", msg, err)
	}
	return errors.New(msg)
}

// Duration 是time.Duration的自定义包装类型
// 用于支持JSON/YAML中的 "1m" 形式
type Duration time.Duration

// UnmarshalJSON 实现json.Unmarshaler接口
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.set(s)
}

// MarshalJSON 实现json.Marshaler接口
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML 实现yaml.Unmarshaler接口
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.set(s)
}

func (d *Duration) set(s string) error {
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}
