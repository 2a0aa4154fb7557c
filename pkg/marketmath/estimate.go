package marketmath

import "fmt"

// OrderEstimate 下单成本/收益预估（展示用，单位为美元和份额）
//
// 二元市场每份赢面结算 1 美元：
//   - BUY 在价格 P 买入 S 份：成本 P·S，赢面回报 S，潜在盈亏 S − P·S
//   - SELL 在价格 P 卖出 S 份等价于以 (1−P) 买入对侧：
//     锁定 (1−P)·S，赢面回报 S，潜在盈亏 P·S
type OrderEstimate struct {
	Cost            float64
	PotentialReturn float64
	PotentialPnL    float64
}

// CalculateOrderEstimate 计算下单预估
//
// priceCents 为整数分 [1, 99]，size 为份额数量（> 0）。
func CalculateOrderEstimate(priceCents int, size float64, buy bool) (*OrderEstimate, error) {
	if priceCents < 1 || priceCents > 99 {
		return nil, fmt.Errorf("价格超出范围 [1, 99]: %d", priceCents)
	}
	if size <= 0 {
		return nil, fmt.Errorf("数量必须大于 0: %v", size)
	}

	price := float64(priceCents) / 100.0

	if buy {
		cost := price * size
		return &OrderEstimate{
			Cost:            cost,
			PotentialReturn: size,
			PotentialPnL:    size - cost,
		}, nil
	}

	// 卖出按对侧镜像价 (1-P) 计
	cost := (1 - price) * size
	return &OrderEstimate{
		Cost:            cost,
		PotentialReturn: size,
		PotentialPnL:    size - cost,
	}, nil
}
