package types

// Market 市场摘要（签名域选择依赖 NegRisk 标记）
type Market struct {
	ConditionID string `json:"condition_id"`
	Slug        string `json:"slug"`
	Question    string `json:"question"`

	// YesTokenID / NoTokenID 两个结果代币的资产 ID
	YesTokenID string `json:"yes_token_id"`
	NoTokenID  string `json:"no_token_id"`

	// NegRisk 负风险（多结果）市场使用不同的交易所合约，
	// 构建 EIP712 域时必须据此选择 verifyingContract
	NegRisk bool `json:"neg_risk"`
}

// IsValid 市场摘要是否可用于下单
func (m *Market) IsValid() bool {
	return m.ConditionID != "" && m.YesTokenID != "" && m.NoTokenID != ""
}
