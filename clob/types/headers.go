package types

// L2HeaderArgs HMAC 签名的请求描述
type L2HeaderArgs struct {
	Method      string
	RequestPath string
	Body        *string
}

// L1PolyHeader L1 认证头（EIP712 签名验证，用于派生 API 密钥）
type L1PolyHeader struct {
	PolyAddress   string `json:"POLY_ADDRESS"`
	PolySignature string `json:"POLY_SIGNATURE"`
	PolyTimestamp string `json:"POLY_TIMESTAMP"`
	PolyNonce     string `json:"POLY_NONCE"`
}

// L2PolyHeader L2 认证头（API 密钥验证，逐请求 HMAC 签名）
type L2PolyHeader struct {
	PolyAddress    string `json:"POLY_ADDRESS"`
	PolySignature  string `json:"POLY_SIGNATURE"`
	PolyTimestamp  string `json:"POLY_TIMESTAMP"`
	PolyAPIKey     string `json:"POLY_API_KEY"`
	PolyPassphrase string `json:"POLY_PASSPHRASE"`
}

// BuilderPolyHeader Builder 归因头（标识提交订单的前端/集成方，独立于用户认证）
type BuilderPolyHeader struct {
	PolyBuilderSignature  string `json:"POLY_BUILDER_SIGNATURE"`
	PolyBuilderTimestamp  string `json:"POLY_BUILDER_TIMESTAMP"`
	PolyBuilderAPIKey     string `json:"POLY_BUILDER_API_KEY"`
	PolyBuilderPassphrase string `json:"POLY_BUILDER_PASSPHRASE"`
}

// L2WithBuilderHeader 用户 L2 认证头 + Builder 归因头
type L2WithBuilderHeader struct {
	L2PolyHeader
	BuilderPolyHeader
}
