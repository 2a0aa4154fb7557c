package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedSecret secret 不是合法的 base64/base64url。
// 与参数校验错误区分开：它意味着配置或环境缺陷，而不是用户输入问题。
var ErrMalformedSecret = errors.New("signing: malformed base64 secret")

// BuildPolyHmacSignature 构建 CLOB HMAC 签名
//
// 消息 = timestamp + method + requestPath [+ body]，body 为 nil 时完全省略
// （不是拼一个空串）。拼接顺序和格式是远端验证的一部分，不能改动。
func BuildPolyHmacSignature(
	secret string,
	timestamp int64,
	method string,
	requestPath string,
	body *string,
) (string, error) {
	// 构建消息
	message := strconv.FormatInt(timestamp, 10) + method + requestPath
	if body != nil {
		message += *body
	}

	keyData, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}

	// 计算 HMAC-SHA256（消息按 UTF-8 编码）
	mac := hmac.New(sha256.New, keyData)
	mac.Write([]byte(message))
	signature := mac.Sum(nil)

	// 转换为 base64
	sigBase64 := base64.StdEncoding.EncodeToString(signature)

	// 转换为 URL 安全的 base64，但保留 = 填充。
	// 标准 base64url 会去掉填充，这个 API 要求保留，必须逐位一致。
	sigURLSafe := strings.ReplaceAll(sigBase64, "+", "-")
	sigURLSafe = strings.ReplaceAll(sigURLSafe, "/", "_")

	return sigURLSafe, nil
}

// VerifyPolyHmacSignature 用同一 secret 重建消息并比对签名（测试/对账用）
func VerifyPolyHmacSignature(
	secret string,
	timestamp int64,
	method string,
	requestPath string,
	body *string,
	signature string,
) (bool, error) {
	expected, err := BuildPolyHmacSignature(secret, timestamp, method, requestPath, body)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}

// decodeSecret 解码 base64/base64url 格式的 secret
//
// 归一化步骤：
//  1. base64url 字母表转标准 base64（- → +，_ → /）
//  2. 按长度 mod 4 补齐 = 填充（余 2 补 "=="，余 3 补 "="，余 1 非法）
func decodeSecret(secret string) ([]byte, error) {
	sanitized := strings.ReplaceAll(secret, "-", "+")
	sanitized = strings.ReplaceAll(sanitized, "_", "/")
	sanitized = strings.TrimRight(sanitized, "=")

	switch len(sanitized) % 4 {
	case 1:
		return nil, fmt.Errorf("%w: invalid length %d", ErrMalformedSecret, len(sanitized))
	case 2:
		sanitized += "=="
	case 3:
		sanitized += "="
	}

	keyData, err := base64.StdEncoding.DecodeString(sanitized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSecret, err)
	}
	return keyData, nil
}
