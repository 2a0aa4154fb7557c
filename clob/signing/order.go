package signing

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/betfront/gotrade/clob/types"
)

// SignTypedData 用本地私钥对 typed data 签名
//
// 正常流程中订单签名由外部钱包产生，这里提供的是进程内私钥路径
// （机器人/脚本场景）。crypto.Sign 返回 65 字节：r(32) + s(32) + v(1)。
func SignTypedData(privateKey *ecdsa.PrivateKey, typedData apitypes.TypedData) (string, error) {
	hash, err := HashTypedData(typedData)
	if err != nil {
		return "", err
	}

	signature, err := crypto.Sign(hash, privateKey)
	if err != nil {
		return "", fmt.Errorf("签名失败: %w", err)
	}

	return "0x" + common.Bytes2Hex(signature), nil
}

// BuildOrderSignature 构建订单签名（typed data + 私钥签名，一步到位）
func BuildOrderSignature(
	privateKey *ecdsa.PrivateKey,
	chainID types.Chain,
	exchangeAddress string,
	order *types.UnsignedOrder,
) (string, error) {
	typedData, err := CreateOrderTypedData(order, chainID, exchangeAddress)
	if err != nil {
		return "", err
	}
	return SignTypedData(privateKey, typedData)
}

// AttachSignature 把外部产生的签名装配到订单上
func AttachSignature(order *types.UnsignedOrder, signature string) *types.SignedOrder {
	return &types.SignedOrder{
		UnsignedOrder: *order,
		Signature:     signature,
	}
}

// GetAddressFromPrivateKey 从私钥获取地址
func GetAddressFromPrivateKey(privateKey *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(privateKey.PublicKey)
}

// PrivateKeyFromHex 从十六进制字符串解析私钥
func PrivateKeyFromHex(hexKey string) (*ecdsa.PrivateKey, error) {
	return crypto.HexToECDSA(hexKey)
}
