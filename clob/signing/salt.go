package signing

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// SaltSource 订单 salt 随机源
//
// salt 每单新生成、从不复用（防重放/碰撞）。实现必须是密码学安全的；
// 没有安全随机源时拒绝出 salt（返回错误），而不是退化到弱随机。
type SaltSource interface {
	NewSalt() (*big.Int, error)
}

// CryptoSaltSource 基于 crypto/rand 的 salt 源（256 位）
type CryptoSaltSource struct{}

// NewSalt 生成一个新的 256 位随机 salt
func (CryptoSaltSource) NewSalt() (*big.Int, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("读取安全随机源失败: %w", err)
	}
	return new(big.Int).SetBytes(buf), nil
}

// DefaultSaltSource 默认 salt 源
var DefaultSaltSource SaltSource = CryptoSaltSource{}
