package types

import "math/big"

// OrderParams 用户下单参数（调用方持有，短生命周期）
type OrderParams struct {
	// TokenID 条件代币资产 ID
	TokenID string

	// Side 订单方向
	Side Side

	// PriceCents 订单价格（分），有效区间 [1, 99]
	PriceCents int

	// Size 条件代币的数量（份额），必须大于 0
	Size float64

	// OrderType 订单执行类型，可选，默认 GTC
	OrderType *OrderType

	// Expiration 订单过期时间戳（秒），可选，0 表示不过期
	Expiration *int64
}

// OrderAmounts 订单金额（定点整数，6 位隐含小数）
//
// BUY:  MakerAmount = 花费的 USDC，TakerAmount = 换得的份额
// SELL: MakerAmount = 卖出的份额，TakerAmount = 换得的 USDC
type OrderAmounts struct {
	MakerAmount *big.Int
	TakerAmount *big.Int
}

// UnsignedOrder 待签名订单
//
// 字段顺序和类型是 EIP712 Order 结构的一部分，远端验证签名时逐字段比对，
// 不能增删或调整。uint256 字段以十进制字符串承载。
type UnsignedOrder struct {
	Salt          string `json:"salt"`
	Maker         string `json:"maker"`
	Signer        string `json:"signer"`
	Taker         string `json:"taker"`
	TokenID       string `json:"tokenId"`
	MakerAmount   string `json:"makerAmount"`
	TakerAmount   string `json:"takerAmount"`
	Expiration    string `json:"expiration"`
	Nonce         string `json:"nonce"`
	FeeRateBps    string `json:"feeRateBps"`
	Side          int    `json:"side"`
	SignatureType int    `json:"signatureType"`
}

// SignedOrder 已签名的订单（签名由外部钱包或本地私钥产生）
type SignedOrder struct {
	UnsignedOrder
	Signature string `json:"signature"`
}

// NewOrder 提交给撮合引擎的订单载荷
//
// Owner 是 API Key，撮合引擎按它归属订单。
type NewOrder struct {
	Order     SignedOrder `json:"order"`
	Owner     string      `json:"owner"`
	OrderType OrderType   `json:"orderType"`
}
