package orders

import (
	"fmt"
	"math"

	"github.com/betfront/gotrade/clob/types"
)

// ValidationResult 校验结果
//
// 校验失败不抛错误，所有违规一次性收集，调用方自行决定是否视为致命。
type ValidationResult struct {
	Valid  bool
	Errors []string
}

func validResult() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalidResult(errs []string) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateOrderParams 校验下单参数（限价单路径，价格单位为整数分）
//
// 注意：这里的价格区间是 [1, 99] 分；ValidateOrder 用的是小数单位
// [0.01, 0.99]。两处端点对应的单位不同，是两个独立的校验器，不要合并。
func ValidateOrderParams(p *types.OrderParams) ValidationResult {
	var errs []string

	if p == nil {
		return invalidResult([]string{"order params are required"})
	}
	if p.TokenID == "" {
		errs = append(errs, "token id is required")
	}
	if !p.Side.IsValid() {
		errs = append(errs, fmt.Sprintf("invalid side: %q", p.Side))
	}
	if p.PriceCents < 1 || p.PriceCents > 99 {
		errs = append(errs, fmt.Sprintf("price must be within [1, 99] cents, got %d", p.PriceCents))
	}
	// NaN 与任何数比较都是 false，必须单独拦截
	if !isFinite(p.Size) {
		errs = append(errs, fmt.Sprintf("size must be a finite number, got %v", p.Size))
	} else if p.Size <= 0 {
		errs = append(errs, fmt.Sprintf("size must be positive, got %v", p.Size))
	}
	if p.OrderType != nil && !p.OrderType.IsValid() {
		errs = append(errs, fmt.Sprintf("invalid order type: %q", *p.OrderType))
	}
	if p.Expiration != nil && *p.Expiration < 0 {
		errs = append(errs, fmt.Sprintf("expiration must not be negative, got %d", *p.Expiration))
	}

	if len(errs) > 0 {
		return invalidResult(errs)
	}
	return validResult()
}

// OrderInput 提交前校验的订单输入（价格单位为小数）
type OrderInput struct {
	MarketID  string
	OutcomeID string
	Side      types.Side
	Price     float64 // 小数价格，有效区间 [0.01, 0.99]（含端点）
	Size      float64
}

// ValidateOrder 校验订单输入（小数价格路径）
func ValidateOrder(in *OrderInput) ValidationResult {
	var errs []string

	if in == nil {
		return invalidResult([]string{"order input is required"})
	}
	if in.MarketID == "" {
		errs = append(errs, "market id is required")
	}
	if in.OutcomeID == "" {
		errs = append(errs, "outcome id is required")
	}
	if !in.Side.IsValid() {
		errs = append(errs, fmt.Sprintf("invalid side: %q", in.Side))
	}
	if !isFinite(in.Price) || in.Price < 0.01 || in.Price > 0.99 {
		errs = append(errs, fmt.Sprintf("price must be within [0.01, 0.99], got %v", in.Price))
	}
	if !isFinite(in.Size) {
		errs = append(errs, fmt.Sprintf("size must be a finite number, got %v", in.Size))
	} else if in.Size <= 0 {
		errs = append(errs, fmt.Sprintf("size must be positive, got %v", in.Size))
	}

	if len(errs) > 0 {
		return invalidResult(errs)
	}
	return validResult()
}

// ValidateBalance 校验余额是否足以支付订单
//
// 只约束 BUY：卖出订单的份额托管在别处检查，这里一律放行。
func ValidateBalance(balance float64, price float64, size float64, side types.Side) ValidationResult {
	if side != types.SideBuy {
		return validResult()
	}

	cost := price * size
	if balance < cost {
		return invalidResult([]string{
			fmt.Sprintf("insufficient balance: need %.6f, have %.6f", cost, balance),
		})
	}
	return validResult()
}
