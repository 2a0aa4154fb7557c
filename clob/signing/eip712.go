package signing

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/betfront/gotrade/clob/types"
)

// CreateAuthTypedData 构建 L1 认证（ClobAuth）的 EIP712 typed data
func CreateAuthTypedData(address string, chainID types.Chain, timestamp int64, nonce int64) apitypes.TypedData {
	domain := apitypes.TypedDataDomain{
		Name:    ClobDomainName,
		Version: ClobVersion,
		ChainId: math.NewHexOrDecimal256(int64(chainID)),
	}

	typeDefs := apitypes.Types{
		"EIP712Domain": {
			{Name: "name", Type: "string"},
			{Name: "version", Type: "string"},
			{Name: "chainId", Type: "uint256"},
		},
		"ClobAuth": {
			{Name: "address", Type: "address"},
			{Name: "timestamp", Type: "string"},
			{Name: "nonce", Type: "uint256"},
			{Name: "message", Type: "string"},
		},
	}

	message := map[string]interface{}{
		"address":   common.HexToAddress(address).Hex(),
		"timestamp": fmt.Sprintf("%d", timestamp),
		"nonce":     big.NewInt(nonce),
		"message":   MsgToSign,
	}

	return apitypes.TypedData{
		Types:       typeDefs,
		PrimaryType: "ClobAuth",
		Domain:      domain,
		Message:     message,
	}
}

// CreateOrderTypedData 构建订单的 EIP712 typed data
//
// Order 的字段顺序和类型由链上合约定义，远端按此验证签名，不能调整。
// exchangeAddress 由调用方根据市场类型（标准 / 负风险）选择，
// 本函数不做选择 —— 选错域会产生格式合法但被拒绝的签名。
func CreateOrderTypedData(
	order *types.UnsignedOrder,
	chainID types.Chain,
	exchangeAddress string,
) (apitypes.TypedData, error) {
	// 解析 uint256 字符串字段
	uints := map[string]string{
		"salt":        order.Salt,
		"tokenId":     order.TokenID,
		"makerAmount": order.MakerAmount,
		"takerAmount": order.TakerAmount,
		"expiration":  order.Expiration,
		"nonce":       order.Nonce,
		"feeRateBps":  order.FeeRateBps,
	}
	parsed := make(map[string]*big.Int, len(uints))
	for name, raw := range uints {
		v, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return apitypes.TypedData{}, fmt.Errorf("无效的 uint256 字段 %s: %q", name, raw)
		}
		parsed[name] = v
	}

	domain := apitypes.TypedDataDomain{
		Name:              OrderDomainName,
		Version:           OrderDomainVersion,
		ChainId:           math.NewHexOrDecimal256(int64(chainID)),
		VerifyingContract: exchangeAddress,
	}

	typeDefs := apitypes.Types{
		"EIP712Domain": {
			{Name: "name", Type: "string"},
			{Name: "version", Type: "string"},
			{Name: "chainId", Type: "uint256"},
			{Name: "verifyingContract", Type: "address"},
		},
		"Order": {
			{Name: "salt", Type: "uint256"},
			{Name: "maker", Type: "address"},
			{Name: "signer", Type: "address"},
			{Name: "taker", Type: "address"},
			{Name: "tokenId", Type: "uint256"},
			{Name: "makerAmount", Type: "uint256"},
			{Name: "takerAmount", Type: "uint256"},
			{Name: "expiration", Type: "uint256"},
			{Name: "nonce", Type: "uint256"},
			{Name: "feeRateBps", Type: "uint256"},
			{Name: "side", Type: "uint8"},
			{Name: "signatureType", Type: "uint8"},
		},
	}

	// 地址使用字符串格式（.Hex()），uint8 使用 big.Int，
	// 与 go-ethereum apitypes 的编码要求一致
	message := map[string]interface{}{
		"salt":          parsed["salt"],
		"maker":         common.HexToAddress(order.Maker).Hex(),
		"signer":        common.HexToAddress(order.Signer).Hex(),
		"taker":         common.HexToAddress(order.Taker).Hex(),
		"tokenId":       parsed["tokenId"],
		"makerAmount":   parsed["makerAmount"],
		"takerAmount":   parsed["takerAmount"],
		"expiration":    parsed["expiration"],
		"nonce":         parsed["nonce"],
		"feeRateBps":    parsed["feeRateBps"],
		"side":          big.NewInt(int64(order.Side)),
		"signatureType": big.NewInt(int64(order.SignatureType)),
	}

	return apitypes.TypedData{
		Types:       typeDefs,
		PrimaryType: "Order",
		Domain:      domain,
		Message:     message,
	}, nil
}

// HashTypedData 计算 typed data 的最终签名哈希（\x19\x01 + domain + message）
func HashTypedData(typedData apitypes.TypedData) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, fmt.Errorf("计算 EIP712 哈希失败: %w", err)
	}
	return hash, nil
}
