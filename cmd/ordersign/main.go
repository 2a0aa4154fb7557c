package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/betfront/gotrade/clob/orders"
	"github.com/betfront/gotrade/clob/signing"
	"github.com/betfront/gotrade/clob/types"
	"github.com/betfront/gotrade/pkg/config"
	"github.com/betfront/gotrade/pkg/logger"
	"github.com/betfront/gotrade/pkg/marketmath"
)

func main() {
	var (
		configPath = flag.String("config", "", "yaml 配置文件路径（可选，环境变量会覆盖）")
		tokenID    = flag.String("token", "", "条件代币资产 ID")
		sideStr    = flag.String("side", "BUY", "订单方向: BUY 或 SELL")
		priceCents = flag.Int("price", 0, "价格（分），1-99")
		size       = flag.Float64("size", 0, "数量（份额）")
		negRisk    = flag.Bool("neg-risk", false, "负风险市场（使用负风险交易所签名域）")
		method     = flag.String("method", "POST", "认证头对应的 HTTP 方法")
		path       = flag.String("path", "/order", "认证头对应的请求路径")
	)
	flag.Parse()

	// .env 可选，缺失不报错
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	if err := logger.Init(cfg.Log); err != nil {
		fatal(err)
	}

	params := &types.OrderParams{
		TokenID:    *tokenID,
		Side:       types.Side(*sideStr),
		PriceCents: *priceCents,
		Size:       *size,
	}
	if result := orders.ValidateOrderParams(params); !result.Valid {
		for _, msg := range result.Errors {
			logger.Errorf("参数校验失败: %s", msg)
		}
		os.Exit(1)
	}

	contracts, err := orders.GetContractConfig(cfg.ChainID)
	if err != nil {
		fatal(err)
	}
	exchangeAddress := contracts.ExchangeAddress(*negRisk)

	maker := cfg.Wallet.Address
	if maker == "" {
		pk, err := signing.PrivateKeyFromHex(cfg.Wallet.PrivateKey)
		if err != nil {
			fatal(fmt.Errorf("解析私钥失败: %w", err))
		}
		maker = signing.GetAddressFromPrivateKey(pk).Hex()
	}

	builder := orders.NewBuilder()
	order, err := builder.BuildOrderStruct(params, maker, 0, 0)
	if err != nil {
		fatal(err)
	}

	est, err := marketmath.CalculateOrderEstimate(*priceCents, *size, params.Side == types.SideBuy)
	if err == nil {
		logger.Infof("预估: 成本 $%.2f, 赢面回报 $%.2f, 潜在盈亏 $%.2f",
			est.Cost, est.PotentialReturn, est.PotentialPnL)
	}

	// 本地私钥签名路径（没有私钥时只输出待签名订单，由外部钱包签名）
	var out interface{} = order
	if cfg.Wallet.PrivateKey != "" {
		pk, err := signing.PrivateKeyFromHex(cfg.Wallet.PrivateKey)
		if err != nil {
			fatal(fmt.Errorf("解析私钥失败: %w", err))
		}
		sig, err := signing.BuildOrderSignature(pk, cfg.ChainID, exchangeAddress, order)
		if err != nil {
			fatal(err)
		}
		signed := signing.AttachSignature(order, sig)

		// 已签名时输出完整的提交载荷，可直接 POST 给撮合引擎
		orderType := types.OrderTypeGTC
		if params.OrderType != nil {
			orderType = *params.OrderType
		}
		out = &types.NewOrder{
			Order:     *signed,
			Owner:     cfg.Credentials.Creds().Key,
			OrderType: orderType,
		}
	}

	// L2 认证头（每请求单独签名）
	l2, err := signing.CreateL2Headers(maker, cfg.Credentials.Creds(), &types.L2HeaderArgs{
		Method:      *method,
		RequestPath: *path,
	}, nil)
	if err != nil {
		fatal(err)
	}

	payload := map[string]interface{}{
		"order":   out,
		"headers": l2,
	}

	// Builder 归因头（可选）
	if cfg.HasBuilderCreds() {
		bh, err := signing.CreateBuilderHeaders(cfg.Builder.Creds(), &types.L2HeaderArgs{
			Method:      *method,
			RequestPath: *path,
		}, nil)
		if err != nil {
			fatal(err)
		}
		payload["headers"] = signing.InjectBuilderHeaders(l2, bh)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
