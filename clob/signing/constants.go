package signing

const (
	// ClobDomainName L1 认证 EIP712 域名
	ClobDomainName = "ClobAuthDomain"

	// ClobVersion L1 认证 EIP712 版本
	ClobVersion = "1"

	// MsgToSign L1 认证签名消息
	MsgToSign = "This message attests that I control the given wallet"

	// OrderDomainName 订单 EIP712 域名（标准与负风险交易所共用，
	// 二者靠 verifyingContract 区分）
	OrderDomainName = "Polymarket CTF Exchange"

	// OrderDomainVersion 订单 EIP712 版本
	OrderDomainVersion = "1"
)
