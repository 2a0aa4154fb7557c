package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/betfront/gotrade/clob/types"
	"github.com/betfront/gotrade/pkg/logger"
)

// Config 运行配置
type Config struct {
	// ChainID 链 ID（137 = Polygon 主网，80002 = Amoy 测试网）
	ChainID types.Chain `yaml:"chain_id"`

	// Wallet 钱包配置
	Wallet WalletConfig `yaml:"wallet"`

	// Credentials 用户 L2 API 凭证
	Credentials CredentialsConfig `yaml:"credentials"`

	// Builder Builder 归因凭证（可选）
	Builder CredentialsConfig `yaml:"builder"`

	// Log 日志配置
	Log logger.Config `yaml:"log"`
}

// WalletConfig 钱包配置
type WalletConfig struct {
	// Address 下单使用的钱包地址（maker）
	Address string `yaml:"address"`

	// PrivateKey 本地签名私钥（十六进制，可选；
	// 不配置时订单签名必须由外部钱包产生）
	PrivateKey string `yaml:"private_key"`
}

// CredentialsConfig API 凭证配置
type CredentialsConfig struct {
	APIKey     string `yaml:"api_key"`
	Secret     string `yaml:"secret"`
	Passphrase string `yaml:"passphrase"`
}

// Creds 转换为签名层使用的凭证结构
func (c CredentialsConfig) Creds() *types.ApiKeyCreds {
	return &types.ApiKeyCreds{
		Key:        c.APIKey,
		Secret:     c.Secret,
		Passphrase: c.Passphrase,
	}
}

// Load 从 yaml 文件加载配置，随后应用环境变量覆盖
func Load(filePath string) (*Config, error) {
	cfg := defaultConfig()

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, errors.Wrapf(err, "读取配置文件 %s 失败", filePath)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "解析配置文件 %s 失败", filePath)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFromEnv 仅从环境变量加载配置（无配置文件场景）
func LoadFromEnv() *Config {
	cfg := defaultConfig()
	cfg.applyEnv()
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		ChainID: types.ChainPolygon,
		Log: logger.Config{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		},
	}
}

// applyEnv 环境变量覆盖（环境变量优先于配置文件）
func (c *Config) applyEnv() {
	c.Wallet.Address = getEnv("WALLET_ADDRESS", c.Wallet.Address)
	c.Wallet.PrivateKey = getEnv("PRIVATE_KEY", c.Wallet.PrivateKey)

	c.Credentials.APIKey = getEnv("POLY_API_KEY", c.Credentials.APIKey)
	c.Credentials.Secret = getEnv("POLY_SECRET", c.Credentials.Secret)
	c.Credentials.Passphrase = getEnv("POLY_PASSPHRASE", c.Credentials.Passphrase)

	c.Builder.APIKey = getEnv("POLY_BUILDER_API_KEY", c.Builder.APIKey)
	c.Builder.Secret = getEnv("POLY_BUILDER_SECRET", c.Builder.Secret)
	c.Builder.Passphrase = getEnv("POLY_BUILDER_PASSPHRASE", c.Builder.Passphrase)

	if v := os.Getenv("CHAIN_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			c.ChainID = types.Chain(id)
		}
	}
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.OutputFile = getEnv("LOG_FILE", c.Log.OutputFile)
}

// Validate 校验配置，签名相关的缺陷必须在任何请求发出前暴露
func (c *Config) Validate() error {
	if c.ChainID != types.ChainPolygon && c.ChainID != types.ChainAmoy {
		return errors.Errorf("不支持的链 ID: %d", c.ChainID)
	}
	if c.Wallet.Address == "" && c.Wallet.PrivateKey == "" {
		return errors.New("wallet.address 或 wallet.private_key 至少配置一个")
	}
	if !c.Credentials.Creds().IsComplete() {
		return errors.New("credentials 不完整: api_key / secret / passphrase 都是必需的")
	}
	return nil
}

// HasBuilderCreds Builder 归因凭证是否配置齐全
func (c *Config) HasBuilderCreds() bool {
	return c.Builder.Creds().IsComplete()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
