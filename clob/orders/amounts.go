package orders

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/betfront/gotrade/clob/types"
)

// CollateralTokenDecimals 抵押品代币精度（USDC = 6）
const CollateralTokenDecimals = 6

// CalculateOrderAmounts 计算订单的 maker/taker 金额（定点整数，6 位隐含小数）
//
// priceCents 为整数分，有效区间 [1, 99]；size 为份额数量，必须大于 0。
//
// cost = price/100 * size，cost 与 size 各自乘以 1e6 后向下取整 ——
// 截断而不是四舍五入，保证整数金额代表的成本不会高于计算值（避免多付）。
//
// BUY:  makerAmount = cost（付出的 USDC），takerAmount = size（换得的份额）
// SELL: 两者互换。
//
// 溢出说明：对现实市场规模，结果在 64 位安全整数范围内；不设显式溢出检查。
func CalculateOrderAmounts(priceCents int, size float64, side types.Side) (*types.OrderAmounts, error) {
	if priceCents < 1 || priceCents > 99 {
		return nil, fmt.Errorf("价格超出范围 [1, 99]: %d", priceCents)
	}
	// NaN 对任何比较都为 false，单靠 <= 0 拦不住，必须先拦非有限值，
	// 否则 decimal.NewFromFloat 会 panic
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("数量必须是有限数: %v", size)
	}
	if size <= 0 {
		return nil, fmt.Errorf("数量必须大于 0: %v", size)
	}
	if !side.IsValid() {
		return nil, fmt.Errorf("无效的订单方向: %q", side)
	}

	sizeDec := decimal.NewFromFloat(size)

	// price(分) * size * 10^4 == price/100 * size * 10^6，十进制下精确
	scaledCost := decimal.NewFromInt(int64(priceCents)).Mul(sizeDec).Shift(4)
	scaledSize := sizeDec.Shift(CollateralTokenDecimals)

	// BigInt 对非负值即为向下取整
	costInt := scaledCost.BigInt()
	sizeInt := scaledSize.BigInt()

	if side == types.SideBuy {
		return &types.OrderAmounts{MakerAmount: costInt, TakerAmount: sizeInt}, nil
	}
	return &types.OrderAmounts{MakerAmount: sizeInt, TakerAmount: costInt}, nil
}
