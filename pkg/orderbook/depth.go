package orderbook

// DepthResult 深度遍历结果
type DepthResult struct {
	// AvgPrice 成交量加权平均价（不是最优价）
	AvgPrice float64

	// TotalCost 总成本
	TotalCost float64

	// FilledSize 实际可成交数量。簿内深度不足时小于请求数量，
	// 调用方必须自行比较 FilledSize 与请求数量来识别流动性不足。
	FilledSize float64
}

// WalkDepth 模拟市价单吃掉簿内流动性，逐档消耗直到满足数量或簿被吃穿
//
// levels 按最优价在前排序。部分成交是数据状态而不是错误：深度不够时
// 返回可成交部分及其均价；完全无法成交（空簿或 size <= 0）返回 nil。
func WalkDepth(levels []Level, size float64) *DepthResult {
	if size <= 0 || len(levels) == 0 {
		return nil
	}

	remaining := size
	cost := 0.0
	filled := 0.0

	for _, lv := range levels {
		if remaining <= 0 {
			break
		}
		if lv.Size <= 0 {
			continue
		}

		take := lv.Size
		if remaining < take {
			take = remaining
		}

		cost += take * lv.Price
		filled += take
		remaining -= take
	}

	if filled <= 0 {
		return nil
	}

	return &DepthResult{
		AvgPrice:   cost / filled,
		TotalCost:  cost,
		FilledSize: filled,
	}
}
