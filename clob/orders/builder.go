package orders

import (
	"fmt"
	"strconv"

	"github.com/betfront/gotrade/clob/signing"
	"github.com/betfront/gotrade/clob/types"
)

// Builder 订单构建器
//
// 无状态：每次 Build 独立完成参数校验、金额计算和 salt 生成，
// 构建出的订单签名并提交后即丢弃，从不持久化。
type Builder struct {
	salts         signing.SaltSource
	signatureType types.SignatureType
}

// NewBuilder 创建订单构建器（EOA 签名，默认安全随机 salt 源）
func NewBuilder() *Builder {
	return &Builder{
		salts:         signing.DefaultSaltSource,
		signatureType: types.SignatureTypeEOA,
	}
}

// NewBuilderWithSaltSource 使用指定 salt 源创建构建器（测试注入用）
func NewBuilderWithSaltSource(salts signing.SaltSource) *Builder {
	return &Builder{
		salts:         salts,
		signatureType: types.SignatureTypeEOA,
	}
}

// BuildOrderStruct 组装待签名订单
//
//   - salt 每单从安全随机源新取 256 位；随机源不可用时返回错误，
//     绝不退化到弱随机
//   - signer = maker（单钱包自签订单，不支持委托签名）
//   - taker = 零地址（公开订单，任何人可成交）
//   - side 映射为合约编码（BUY → 0，SELL → 1）
//   - expiration 未提供时为 "0"（不过期）
func (b *Builder) BuildOrderStruct(
	params *types.OrderParams,
	maker string,
	nonce int64,
	feeRateBps int64,
) (*types.UnsignedOrder, error) {
	if result := ValidateOrderParams(params); !result.Valid {
		return nil, fmt.Errorf("订单参数无效: %v", result.Errors)
	}

	amounts, err := CalculateOrderAmounts(params.PriceCents, params.Size, params.Side)
	if err != nil {
		return nil, fmt.Errorf("计算金额失败: %w", err)
	}

	salt, err := b.salts.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("生成 salt 失败: %w", err)
	}

	expiration := "0"
	if params.Expiration != nil && *params.Expiration > 0 {
		expiration = strconv.FormatInt(*params.Expiration, 10)
	}

	return &types.UnsignedOrder{
		Salt:          salt.String(),
		Maker:         maker,
		Signer:        maker,
		Taker:         types.ZeroAddress,
		TokenID:       params.TokenID,
		MakerAmount:   amounts.MakerAmount.String(),
		TakerAmount:   amounts.TakerAmount.String(),
		Expiration:    expiration,
		Nonce:         strconv.FormatInt(nonce, 10),
		FeeRateBps:    strconv.FormatInt(feeRateBps, 10),
		Side:          params.Side.Code(),
		SignatureType: int(b.signatureType),
	}, nil
}
