package orders

import (
	"errors"
	"math/big"
	"testing"

	"github.com/betfront/gotrade/clob/types"
)

func testParams() *types.OrderParams {
	return &types.OrderParams{
		TokenID:    "71321045679252212594626385532706912750332728571942532289631379312455583992563",
		Side:       types.SideBuy,
		PriceCents: 65,
		Size:       100,
	}
}

const testMaker = "0x0000000000000000000000000000000000000001"

func TestBuildOrderStruct_Defaults(t *testing.T) {
	order, err := NewBuilder().BuildOrderStruct(testParams(), testMaker, 0, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if order.Maker != testMaker || order.Signer != testMaker {
		t.Fatalf("signer must equal maker: %q / %q", order.Maker, order.Signer)
	}
	if order.Taker != types.ZeroAddress {
		t.Fatalf("taker must default to the zero address: %q", order.Taker)
	}
	if order.Expiration != "0" {
		t.Fatalf("expiration must default to \"0\": %q", order.Expiration)
	}
	if order.Nonce != "0" || order.FeeRateBps != "0" {
		t.Fatalf("nonce/feeRateBps defaults: %q / %q", order.Nonce, order.FeeRateBps)
	}
	if order.Side != 0 {
		t.Fatalf("BUY must encode as 0: %d", order.Side)
	}
	if order.SignatureType != int(types.SignatureTypeEOA) {
		t.Fatalf("signature type must be EOA: %d", order.SignatureType)
	}
	if order.MakerAmount != "65000000" || order.TakerAmount != "100000000" {
		t.Fatalf("amounts: %s / %s", order.MakerAmount, order.TakerAmount)
	}

	salt, ok := new(big.Int).SetString(order.Salt, 10)
	if !ok || salt.Sign() <= 0 {
		t.Fatalf("salt must be a positive decimal integer: %q", order.Salt)
	}
}

func TestBuildOrderStruct_FreshSaltPerOrder(t *testing.T) {
	b := NewBuilder()
	first, err := b.BuildOrderStruct(testParams(), testMaker, 7, 25)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := b.BuildOrderStruct(testParams(), testMaker, 7, 25)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if first.Salt == second.Salt {
		t.Fatal("salt must be freshly generated per order")
	}

	// salt 之外的字段必须完全一致
	a, c := *first, *second
	a.Salt, c.Salt = "", ""
	if a != c {
		t.Fatalf("orders differ beyond salt: %+v vs %+v", a, c)
	}
	if first.Nonce != "7" || first.FeeRateBps != "25" {
		t.Fatalf("nonce/fee passthrough: %q / %q", first.Nonce, first.FeeRateBps)
	}
}

func TestBuildOrderStruct_SellSide(t *testing.T) {
	params := testParams()
	params.Side = types.SideSell

	order, err := NewBuilder().BuildOrderStruct(params, testMaker, 0, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if order.Side != 1 {
		t.Fatalf("SELL must encode as 1: %d", order.Side)
	}
	if order.MakerAmount != "100000000" || order.TakerAmount != "65000000" {
		t.Fatalf("sell amounts must be swapped: %s / %s", order.MakerAmount, order.TakerAmount)
	}
}

func TestBuildOrderStruct_Expiration(t *testing.T) {
	params := testParams()
	exp := int64(1800000000)
	params.Expiration = &exp

	order, err := NewBuilder().BuildOrderStruct(params, testMaker, 0, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if order.Expiration != "1800000000" {
		t.Fatalf("expiration: %q", order.Expiration)
	}
}

func TestBuildOrderStruct_InvalidParams(t *testing.T) {
	params := testParams()
	params.PriceCents = 0
	if _, err := NewBuilder().BuildOrderStruct(params, testMaker, 0, 0); err == nil {
		t.Fatal("expected error for out-of-range price")
	}
}

// failingSaltSource 模拟安全随机源不可用
type failingSaltSource struct{}

func (failingSaltSource) NewSalt() (*big.Int, error) {
	return nil, errors.New("entropy unavailable")
}

func TestBuildOrderStruct_SaltSourceFailure(t *testing.T) {
	b := NewBuilderWithSaltSource(failingSaltSource{})
	// 随机源失败必须拒绝出单，绝不退化到弱随机
	if _, err := b.BuildOrderStruct(testParams(), testMaker, 0, 0); err == nil {
		t.Fatal("expected error when the salt source fails")
	}
}
