package orderbook

// Level 订单簿单档（价格 + 数量）
type Level struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

// Book 订单簿快照
//
// 两侧都按最优价在前排序：asks 升序，bids 降序。
// 同一侧内价格必须严格单调，深度遍历的正确性依赖于此，排序由调用方负责。
type Book struct {
	Bids []Level `json:"bids"`
	Asks []Level `json:"asks"`
}

// BestBid 最优买价
func (b *Book) BestBid() (Level, bool) {
	if len(b.Bids) == 0 {
		return Level{}, false
	}
	return b.Bids[0], true
}

// BestAsk 最优卖价
func (b *Book) BestAsk() (Level, bool) {
	if len(b.Asks) == 0 {
		return Level{}, false
	}
	return b.Asks[0], true
}

// Spread 买卖价差（最优卖价 - 最优买价）。任一侧为空时返回 false。
func (b *Book) Spread() (float64, bool) {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	if !okBid || !okAsk {
		return 0, false
	}
	return ask.Price - bid.Price, true
}

// MidPrice 中间价（最优买卖价的算术平均）。任一侧为空时返回 false。
func (b *Book) MidPrice() (float64, bool) {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	if !okBid || !okAsk {
		return 0, false
	}
	return (bid.Price + ask.Price) / 2, true
}

// CumulativeLevel 带累计数量的档位
type CumulativeLevel struct {
	Price      float64 `json:"price"`
	Size       float64 `json:"size"`
	Cumulative float64 `json:"cumulative"`
}

// CumulativeDepth 逐档累计数量（深度图用）
//
// 保持输入顺序，不做排序 —— 调用方需先按最优价在前排好。
func CumulativeDepth(levels []Level) []CumulativeLevel {
	out := make([]CumulativeLevel, 0, len(levels))
	total := 0.0
	for _, lv := range levels {
		total += lv.Size
		out = append(out, CumulativeLevel{
			Price:      lv.Price,
			Size:       lv.Size,
			Cumulative: total,
		})
	}
	return out
}
