// Package config 统一配置管理
//
// 配置加载策略：
//  1. 从 .env 加载敏感信息（密码、密钥）和 APP_ENV
//  2. 根据 APP_ENV 加载对应的 configs/{env}.yaml 配置文件
//  3. 环境变量可覆盖 YAML 配置
//
// 凭据单一数据源：
//
//	密码/密钥只存在 .env 文件中（YAML 中不存储任何密码）。
//
// 使用方式：
//   - 开发环境: APP_ENV=dev (默认)
//   - 测试环境: APP_ENV=test
//   - 生产环境: APP_ENV=prod
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment 环境类型
type Environment string

const (
	EnvProduction  Environment = "prod"
	EnvTest        Environment = "test"
	EnvDevelopment Environment = "dev"
)

// YAMLConfig YAML 配置文件结构
type YAMLConfig struct {
	APIServer APIServerConfig `yaml:"api_server"`
	Database  DatabaseConfig  `yaml:"database"`
	MinIO     MinIOConfig     `yaml:"minio"`
	Auth      AuthConfig      `yaml:"auth"`
	Identity  IdentityConfig  `yaml:"identity"`
}

// APIServerConfig API Server 配置
type APIServerConfig struct {
	Port string `yaml:"port"`
}

// DatabaseConfig MongoDB 配置
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"-"` // 只从 DB_PASSWORD 环境变量读取
	Name     string `yaml:"name"`
	URI      string `yaml:"uri"` // 连接 URI（优先于 host/port，如 mongodb://localhost:27017）
}

// MinIOConfig MinIO 对象存储配置
// Endpoint 为空时不启用对象存储（委员会头像删除退化为仅删数据库记录）
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"` // 例如 localhost:9000
	AccessKey string `yaml:"-"`        // 只从 MINIO_ROOT_USER 环境变量读取
	SecretKey string `yaml:"-"`        // 只从 MINIO_ROOT_PASSWORD 环境变量读取
	UseSSL    bool   `yaml:"use_ssl"`
	Bucket    string `yaml:"bucket"`
}

// AuthConfig 认证配置
// 注意：JWTSecret 只从环境变量读取，不存储在 YAML 中
type AuthConfig struct {
	JWTSecret      string `yaml:"-"`                // 只从 JWT_SECRET 环境变量读取
	AccessTokenTTL string `yaml:"access_token_ttl"` // 例如 "1h"
}

// IdentityConfig 身份服务商配置（Google Identity Toolkit）
// ProjectID 为空时不启用，删除会员只作用于本地数据库
type IdentityConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"-"` // 只从 GOOGLE_APPLICATION_CREDENTIALS 环境变量读取
}

// Config 应用配置（最终使用的配置）
type Config struct {
	Env            Environment
	DatabaseURL    string
	DatabaseDBName string
	APIPort        string
	Auth           AuthConfig
	MinIO          MinIOConfig
	Identity       IdentityConfig
}

var configPaths = []string{
	"configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

var envPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"../../../.env",
}

// Load 加载配置
// 1. 加载 .env（敏感信息 + APP_ENV）
// 2. 根据 APP_ENV 加载 configs/{env}.yaml
// 3. 构建最终配置
func Load() *Config {
	// 加载 .env
	for _, p := range envPaths {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	// 解析环境
	env := parseEnv(getEnv("APP_ENV", "dev"))

	// 加载 YAML 配置
	yamlCfg := loadYAMLConfig(env)

	// 从环境变量获取敏感信息
	yamlCfg.Database.Password = os.Getenv("DB_PASSWORD")
	yamlCfg.MinIO.AccessKey = os.Getenv("MINIO_ROOT_USER")
	yamlCfg.MinIO.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	yamlCfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	yamlCfg.Identity.CredentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

	// 构建最终配置
	cfg := &Config{
		Env:            env,
		DatabaseURL:    buildMongoURI(yamlCfg.Database),
		DatabaseDBName: yamlCfg.Database.Name,
		APIPort:        getEnv("API_PORT", yamlCfg.APIServer.Port),
		Auth:           yamlCfg.Auth,
		MinIO:          yamlCfg.MinIO,
		Identity:       yamlCfg.Identity,
	}

	return cfg
}

// loadYAMLConfig 加载 YAML 配置文件
// 加载顺序：默认值 → common.yaml → {env}.yaml
func loadYAMLConfig(env Environment) *YAMLConfig {
	// 1. 初始化默认值
	cfg := &YAMLConfig{
		APIServer: APIServerConfig{Port: "8080"},
		Database:  DatabaseConfig{Host: "localhost", Port: 27017, Name: "membership_admin"},
		MinIO:     MinIOConfig{Bucket: "committee-photos"},
		Auth:      AuthConfig{AccessTokenTTL: "1h"},
	}

	// 2. 加载 common.yaml（公共配置）
	for _, base := range configPaths {
		path := filepath.Join(base, "common.yaml")
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, cfg)
			break
		}
	}

	// 3. 加载 {env}.yaml（环境特定配置，覆盖公共配置）
	filename := fmt.Sprintf("%s.yaml", env)
	for _, base := range configPaths {
		path := filepath.Join(base, filename)
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, cfg)
			break
		}
	}

	return cfg
}

// buildMongoURI 构建 MongoDB 连接字符串
// URI 字段优先；否则由 host/port（+ 可选的 user/password）组装
func buildMongoURI(db DatabaseConfig) string {
	if db.URI != "" {
		return db.URI
	}
	if db.User != "" && db.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%d", db.User, db.Password, db.Host, db.Port)
	}
	return fmt.Sprintf("mongodb://%s:%d", db.Host, db.Port)
}

// AccessTokenTTL 解析访问令牌有效期，非法值回落到 1 小时
func (c *Config) AccessTokenTTL() time.Duration {
	d, err := time.ParseDuration(c.Auth.AccessTokenTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

func parseEnv(env string) Environment {
	switch strings.ToLower(env) {
	case "test":
		return EnvTest
	case "prod", "production":
		return EnvProduction
	default:
		return EnvDevelopment
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsTest 是否为测试环境
func (c *Config) IsTest() bool {
	return c.Env == EnvTest
}

// String 返回配置摘要（隐藏密码）
func (c *Config) String() string {
	return fmt.Sprintf("Config{Env: %s, DB: %s/%s, Port: %s}",
		c.Env, maskPassword(c.DatabaseURL), c.DatabaseDBName, c.APIPort)
}

// maskPassword 隐藏密码
func maskPassword(url string) string {
	re := regexp.MustCompile(`(://[^:]+:)([^@]+)(@)`)
	return re.ReplaceAllString(url, "${1}***${3}")
}
