package types

// Side 订单方向
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Code 返回链上合约使用的方向编码（BUY = 0, SELL = 1）
func (s Side) Code() int {
	if s == SideSell {
		return 1
	}
	return 0
}

// IsValid 校验方向取值
func (s Side) IsValid() bool {
	return s == SideBuy || s == SideSell
}

// OrderType 订单类型
type OrderType string

const (
	OrderTypeGTC OrderType = "GTC" // Good Till Cancel - 一直有效直到取消
	OrderTypeFOK OrderType = "FOK" // Fill or Kill - 全部成交或全部取消
	OrderTypeGTD OrderType = "GTD" // Good Till Date - 指定日期前有效
	OrderTypeFAK OrderType = "FAK" // Fill and Kill - 部分成交，剩余取消
)

// IsValid 校验订单类型取值
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeGTC, OrderTypeFOK, OrderTypeGTD, OrderTypeFAK:
		return true
	}
	return false
}

// Chain 区块链网络
type Chain int

const (
	ChainPolygon Chain = 137
	ChainAmoy    Chain = 80002
)

// SignatureType 签名类型
type SignatureType int

const (
	SignatureTypeEOA        SignatureType = 0 // EOA - Standard Ethereum wallet (MetaMask)
	SignatureTypeMagic      SignatureType = 1 // POLY_PROXY - Magic Link email/Google login
	SignatureTypeGnosisSafe SignatureType = 2 // GNOSIS_SAFE - Gnosis Safe multisig proxy wallet
)

// ZeroAddress 零地址，作为 taker 时表示公开订单（任何人可成交）
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// ApiKeyCreds API 密钥凭证（L2 认证）
type ApiKeyCreds struct {
	Key        string
	Secret     string
	Passphrase string
}

// IsComplete 凭证三要素是否齐全（签名前必须检查，避免发出无法通过认证的请求）
func (c *ApiKeyCreds) IsComplete() bool {
	return c != nil && c.Key != "" && c.Secret != "" && c.Passphrase != ""
}
