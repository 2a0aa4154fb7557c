package signing

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/betfront/gotrade/clob/types"
)

// ErrMissingCredentials 凭证缺失。必须在任何网络调用之前失败。
var ErrMissingCredentials = errors.New("signing: missing api credentials")

// CreateL1Headers 创建 L1 认证头（EIP712 签名验证，用于派生 API 密钥）
func CreateL1Headers(
	privateKey *ecdsa.PrivateKey,
	chainID types.Chain,
	nonce *int64,
	timestamp *int64,
) (*types.L1PolyHeader, error) {
	ts := time.Now().Unix()
	if timestamp != nil {
		ts = *timestamp
	}

	n := int64(0)
	if nonce != nil {
		n = *nonce
	}

	address := GetAddressFromPrivateKey(privateKey)

	typedData := CreateAuthTypedData(address.Hex(), chainID, ts, n)
	sig, err := SignTypedData(privateKey, typedData)
	if err != nil {
		return nil, fmt.Errorf("构建 EIP712 签名失败: %w", err)
	}

	return &types.L1PolyHeader{
		PolyAddress:   address.Hex(),
		PolySignature: sig,
		PolyTimestamp: strconv.FormatInt(ts, 10),
		PolyNonce:     strconv.FormatInt(n, 10),
	}, nil
}

// CreateL2Headers 创建 L2 认证头（API 密钥验证）
//
// address 是调用方持有的钱包地址；时间戳为 unix 秒（字符串），
// 每个请求单独签名，头集合一次性使用。
func CreateL2Headers(
	address string,
	creds *types.ApiKeyCreds,
	args *types.L2HeaderArgs,
	timestamp *int64,
) (*types.L2PolyHeader, error) {
	if !creds.IsComplete() {
		return nil, ErrMissingCredentials
	}

	ts := time.Now().Unix()
	if timestamp != nil {
		ts = *timestamp
	}

	sig, err := BuildPolyHmacSignature(
		creds.Secret,
		ts,
		args.Method,
		args.RequestPath,
		args.Body,
	)
	if err != nil {
		return nil, fmt.Errorf("构建 HMAC 签名失败: %w", err)
	}

	return &types.L2PolyHeader{
		PolyAddress:    address,
		PolySignature:  sig,
		PolyTimestamp:  strconv.FormatInt(ts, 10),
		PolyAPIKey:     creds.Key,
		PolyPassphrase: creds.Passphrase,
	}, nil
}

// CreateBuilderHeaders 创建 Builder 归因头
//
// 与用户 L2 签名同一套 HMAC 原语，但用 builder 自己的凭证，
// 标识提交订单的前端/集成方。
func CreateBuilderHeaders(
	creds *types.ApiKeyCreds,
	args *types.L2HeaderArgs,
	timestamp *int64,
) (*types.BuilderPolyHeader, error) {
	if !creds.IsComplete() {
		return nil, ErrMissingCredentials
	}

	ts := time.Now().Unix()
	if timestamp != nil {
		ts = *timestamp
	}

	sig, err := BuildPolyHmacSignature(
		creds.Secret,
		ts,
		args.Method,
		args.RequestPath,
		args.Body,
	)
	if err != nil {
		return nil, fmt.Errorf("构建 builder HMAC 签名失败: %w", err)
	}

	return &types.BuilderPolyHeader{
		PolyBuilderSignature:  sig,
		PolyBuilderTimestamp:  strconv.FormatInt(ts, 10),
		PolyBuilderAPIKey:     creds.Key,
		PolyBuilderPassphrase: creds.Passphrase,
	}, nil
}

// InjectBuilderHeaders 把 Builder 归因头并入用户 L2 头
func InjectBuilderHeaders(
	l2Header *types.L2PolyHeader,
	builderHeader *types.BuilderPolyHeader,
) *types.L2WithBuilderHeader {
	return &types.L2WithBuilderHeader{
		L2PolyHeader:      *l2Header,
		BuilderPolyHeader: *builderHeader,
	}
}
