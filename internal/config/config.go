package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Redis      RedisConfig      `yaml:"redis"`
	HelpCenter HelpCenterConfig `yaml:"helpCenter"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// RedisConfig Redis 配置（host 为空时禁用会话镜像）
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// HelpCenterConfig 帮助中心抓取配置
type HelpCenterConfig struct {
	BaseURL        string   `yaml:"baseUrl"`
	RequestTimeout Duration `yaml:"requestTimeout"`
}

// AnalysisConfig 分析流水线配置
type AnalysisConfig struct {
	StagePause Duration `yaml:"stagePause"` // 阶段间暂停，避免压垮限流的外部服务
}

// Duration 支持 "500ms" 写法的时长配置项
type Duration time.Duration

// UnmarshalYAML 按 time.ParseDuration 规则解析时长字符串
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("解析时长配置失败: %w", err)
	}
	*d = Duration(parsed)
	return nil
}

// Std 转换为标准库时长
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig 加载配置文件
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if cfg.HelpCenter.BaseURL == "" {
		cfg.HelpCenter.BaseURL = "https://helpcenter.trendmicro.com"
	}
	if cfg.HelpCenter.RequestTimeout == 0 {
		cfg.HelpCenter.RequestTimeout = Duration(10 * time.Second)
	}
	if cfg.Analysis.StagePause == 0 {
		cfg.Analysis.StagePause = Duration(500 * time.Millisecond)
	}

	return &cfg, nil
}
