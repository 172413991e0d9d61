// Package config 服务器和客户端的运行配置。
//
// 优先级从低到高：默认值 -> 设置文件 -> .env -> 环境变量 -> 命令行参数。
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig 配置值不合法
var ErrInvalidConfig = errors.New("配置无效")

// Protocols 支持的传输协议
var Protocols = []string{"tcp", "kcp", "ws"}

// ========== 服务器 ==========

// ServerConfig 服务器配置
type ServerConfig struct {
	Addr       string        // 游戏监听地址
	Proto      string        // tcp | kcp | ws
	AdminAddr  string        // 管理接口地址，空字符串表示不启动
	Bots       int           // 每个房间补充的 AI 数量
	LevelFile  string        // 自定义关卡文件，空则使用默认关卡
	JWTSecret  string        // 会话 Token 签名密钥
	SessionTTL time.Duration // 会话 Token 有效期
	InputRate  float64       // 每个连接每秒允许的消息数
	InputBurst int
}

// DefaultServer 默认服务器配置
func DefaultServer() ServerConfig {
	return ServerConfig{
		Addr:       ":8080",
		Proto:      "tcp",
		AdminAddr:  ":9090",
		Bots:       0,
		JWTSecret:  "bomby-dev-secret-change-in-production",
		SessionTTL: 5 * time.Minute,
		InputRate:  120,
		InputBurst: 240,
	}
}

// ServerFromEnv 用环境变量覆盖默认值
func ServerFromEnv(cfg ServerConfig) ServerConfig {
	cfg.Addr = getEnv("BOMBY_ADDR", cfg.Addr)
	cfg.Proto = getEnv("BOMBY_PROTO", cfg.Proto)
	cfg.AdminAddr = getEnv("BOMBY_ADMIN_ADDR", cfg.AdminAddr)
	cfg.Bots = getEnvInt("BOMBY_BOTS", cfg.Bots)
	cfg.LevelFile = getEnv("BOMBY_LEVEL", cfg.LevelFile)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.SessionTTL = getEnvDuration("BOMBY_SESSION_TTL", cfg.SessionTTL)
	cfg.InputRate = getEnvFloat("BOMBY_INPUT_RATE", cfg.InputRate)
	cfg.InputBurst = getEnvInt("BOMBY_INPUT_BURST", cfg.InputBurst)
	return cfg
}

// LoadServer 读取服务器配置，args 不包含程序名
func LoadServer(args []string) (ServerConfig, error) {
	loadDotEnv()
	cfg := ServerFromEnv(DefaultServer())

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "服务器监听地址")
	fs.StringVar(&cfg.Proto, "proto", cfg.Proto, "传输协议 (tcp|kcp|ws)")
	fs.StringVar(&cfg.AdminAddr, "admin", cfg.AdminAddr, "管理接口地址，留空关闭")
	fs.IntVar(&cfg.Bots, "bots", cfg.Bots, "每个房间的 AI 数量")
	fs.StringVar(&cfg.LevelFile, "level", cfg.LevelFile, "关卡文件")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "会话 Token 有效期")
	fs.Float64Var(&cfg.InputRate, "input-rate", cfg.InputRate, "每个连接每秒允许的消息数")
	fs.IntVar(&cfg.InputBurst, "input-burst", cfg.InputBurst, "消息突发上限")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate 检查配置
func (c ServerConfig) Validate() error {
	if err := validateProto(c.Proto); err != nil {
		return err
	}
	if c.Bots < 0 || c.Bots > 3 {
		return fmt.Errorf("%w: AI 数量 %d 超出范围 [0, 3]", ErrInvalidConfig, c.Bots)
	}
	if c.InputRate <= 0 || c.InputBurst <= 0 {
		return fmt.Errorf("%w: 输入限速必须为正数", ErrInvalidConfig)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%w: 会话有效期必须为正数", ErrInvalidConfig)
	}
	return nil
}

// ========== 客户端 ==========

// ClientConfig 客户端配置
type ClientConfig struct {
	Online    bool   // 联机模式
	Addr      string // 服务器地址
	Proto     string
	Name      string
	Character string
	RoomID    string
	Bots      int // 本地模式的 AI 数量
	LevelFile string

	// 以下来自设置文件
	ResizableWindow bool
	BGMVolume       float64
	SFXVolume       float64
}

// DefaultClient 默认客户端配置
func DefaultClient() ClientConfig {
	return ClientConfig{
		Addr:            "localhost:8080",
		Proto:           "tcp",
		Name:            "player",
		Character:       "white",
		Bots:            0,
		ResizableWindow: true,
		BGMVolume:       1.0,
		SFXVolume:       1.0,
	}
}

// SettingsPath 设置文件路径，例如 Linux 下为 ~/.config/bomby/config.env
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bomby", "config.env"), nil
}

// ApplySettings 读取设置文件。文件无法读取或格式错误时记录警告并保留默认值
func ApplySettings(cfg ClientConfig, r io.Reader, source string) ClientConfig {
	values, err := godotenv.Parse(r)
	if err != nil {
		log.Printf("警告: 解析设置文件 %s 失败，使用默认设置: %v", source, err)
		return cfg
	}

	next := cfg
	if v, ok := values["RESIZABLE_WINDOW"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("警告: 设置文件 %s 中 RESIZABLE_WINDOW=%q 无效，使用默认设置", source, v)
			return cfg
		}
		next.ResizableWindow = b
	}
	for key, dst := range map[string]*float64{"BGM_VOLUME": &next.BGMVolume, "SFX_VOLUME": &next.SFXVolume} {
		v, ok := values[key]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			log.Printf("警告: 设置文件 %s 中 %s=%q 无效，使用默认设置", source, key, v)
			return cfg
		}
		*dst = f
	}
	return next
}

// loadSettings 从设置文件加载，文件不存在时不警告
func loadSettings(cfg ClientConfig) ClientConfig {
	path, err := SettingsPath()
	if err != nil {
		log.Printf("警告: 获取设置文件路径失败，使用默认设置: %v", err)
		return cfg
	}
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("警告: 读取设置文件 %s 失败，使用默认设置: %v", path, err)
		}
		return cfg
	}
	defer f.Close()
	return ApplySettings(cfg, f, path)
}

// ClientFromEnv 用环境变量覆盖
func ClientFromEnv(cfg ClientConfig) ClientConfig {
	cfg.Addr = getEnv("BOMBY_SERVER", cfg.Addr)
	cfg.Proto = getEnv("BOMBY_PROTO", cfg.Proto)
	cfg.Name = getEnv("BOMBY_NAME", cfg.Name)
	cfg.Character = getEnv("BOMBY_CHARACTER", cfg.Character)
	cfg.SFXVolume = getEnvFloat("BOMBY_SFX_VOLUME", cfg.SFXVolume)
	cfg.BGMVolume = getEnvFloat("BOMBY_BGM_VOLUME", cfg.BGMVolume)
	return cfg
}

// LoadClient 读取客户端配置，args 不包含程序名
func LoadClient(args []string) (ClientConfig, error) {
	cfg := loadSettings(DefaultClient())
	loadDotEnv()
	cfg = ClientFromEnv(cfg)

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.BoolVar(&cfg.Online, "online", cfg.Online, "连接服务器进行联机游戏")
	fs.StringVar(&cfg.Addr, "server", cfg.Addr, "服务器地址")
	fs.StringVar(&cfg.Proto, "proto", cfg.Proto, "传输协议 (tcp|kcp|ws)")
	fs.StringVar(&cfg.Name, "name", cfg.Name, "玩家名字")
	fs.StringVar(&cfg.Character, "character", cfg.Character, "角色 (white|black|red|blue)")
	fs.StringVar(&cfg.RoomID, "room", cfg.RoomID, "房间 ID，留空进入默认房间")
	fs.IntVar(&cfg.Bots, "bots", cfg.Bots, "本地模式的 AI 数量")
	fs.StringVar(&cfg.LevelFile, "level", cfg.LevelFile, "本地模式的关卡文件")
	fs.Float64Var(&cfg.SFXVolume, "sfx", cfg.SFXVolume, "音效音量")
	fs.Float64Var(&cfg.BGMVolume, "bgm", cfg.BGMVolume, "背景音乐音量")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate 检查配置
func (c ClientConfig) Validate() error {
	if err := validateProto(c.Proto); err != nil {
		return err
	}
	if c.Bots < 0 || c.Bots > 2 {
		return fmt.Errorf("%w: 本地 AI 数量 %d 超出范围 [0, 2]", ErrInvalidConfig, c.Bots)
	}
	if c.SFXVolume < 0 || c.BGMVolume < 0 {
		return fmt.Errorf("%w: 音量不能为负数", ErrInvalidConfig)
	}
	return nil
}

// ========== 辅助函数 ==========

// loadDotEnv 加载当前目录的 .env，已存在的环境变量不会被覆盖
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("警告: 加载 .env 失败: %v", err)
	}
}

func validateProto(proto string) error {
	for _, p := range Protocols {
		if proto == p {
			return nil
		}
	}
	return fmt.Errorf("%w: 不支持的协议 %q", ErrInvalidConfig, proto)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("警告: 环境变量 %s=%q 不是整数，忽略", key, v)
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("警告: 环境变量 %s=%q 不是数字，忽略", key, v)
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("警告: 环境变量 %s=%q 不是时长，忽略", key, v)
	}
	return defaultVal
}
