package signing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/betfront/gotrade/clob/types"
)

func sampleOrder() *types.UnsignedOrder {
	return &types.UnsignedOrder{
		Salt:          "123456789",
		Maker:         "0x0000000000000000000000000000000000000001",
		Signer:        "0x0000000000000000000000000000000000000001",
		Taker:         types.ZeroAddress,
		TokenID:       "71321045679252212594626385532706912750332728571942532289631379312455583992563",
		MakerAmount:   "65000000",
		TakerAmount:   "100000000",
		Expiration:    "0",
		Nonce:         "0",
		FeeRateBps:    "0",
		Side:          0,
		SignatureType: 0,
	}
}

const (
	stdExchange     = "0x4bFb41d5B3570DeFd03C39a9A4D8dE6Bd8B8982E"
	negRiskExchange = "0xC5d563A36AE78145C45a50134d48A1215220f80a"
)

func TestCreateOrderTypedData_FieldLayout(t *testing.T) {
	td, err := CreateOrderTypedData(sampleOrder(), types.ChainPolygon, stdExchange)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if td.PrimaryType != "Order" {
		t.Fatalf("primary type: %q", td.PrimaryType)
	}
	if td.Domain.Name != OrderDomainName || td.Domain.Version != OrderDomainVersion {
		t.Fatalf("bad domain: %+v", td.Domain)
	}

	// Order 字段顺序是签名的一部分，逐个比对
	want := []struct{ name, typ string }{
		{"salt", "uint256"},
		{"maker", "address"},
		{"signer", "address"},
		{"taker", "address"},
		{"tokenId", "uint256"},
		{"makerAmount", "uint256"},
		{"takerAmount", "uint256"},
		{"expiration", "uint256"},
		{"nonce", "uint256"},
		{"feeRateBps", "uint256"},
		{"side", "uint8"},
		{"signatureType", "uint8"},
	}
	fields := td.Types["Order"]
	if len(fields) != len(want) {
		t.Fatalf("Order type has %d fields, want %d", len(fields), len(want))
	}
	for i, w := range want {
		if fields[i].Name != w.name || fields[i].Type != w.typ {
			t.Fatalf("field %d: got %s %s, want %s %s", i, fields[i].Name, fields[i].Type, w.name, w.typ)
		}
	}
}

func TestCreateOrderTypedData_InvalidUint(t *testing.T) {
	order := sampleOrder()
	order.MakerAmount = "not-a-number"
	if _, err := CreateOrderTypedData(order, types.ChainPolygon, stdExchange); err == nil {
		t.Fatal("expected error for malformed uint256 field")
	}
}

func TestHashTypedData_DomainSelection(t *testing.T) {
	order := sampleOrder()

	tdStd, err := CreateOrderTypedData(order, types.ChainPolygon, stdExchange)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	tdNeg, err := CreateOrderTypedData(order, types.ChainPolygon, negRiskExchange)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	hashStd, err := HashTypedData(tdStd)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	hashNeg, err := HashTypedData(tdNeg)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// 标准市场和负风险市场 verifyingContract 不同，签名哈希必须不同
	if bytes.Equal(hashStd, hashNeg) {
		t.Fatal("different verifying contracts must hash differently")
	}

	tdAmoy, err := CreateOrderTypedData(order, types.ChainAmoy, stdExchange)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	hashAmoy, err := HashTypedData(tdAmoy)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if bytes.Equal(hashStd, hashAmoy) {
		t.Fatal("different chain ids must hash differently")
	}
}

func TestSignTypedData(t *testing.T) {
	pk, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	td, err := CreateOrderTypedData(sampleOrder(), types.ChainPolygon, stdExchange)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	sig, err := SignTypedData(pk, td)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// 65 字节签名 → "0x" + 130 hex
	if !strings.HasPrefix(sig, "0x") || len(sig) != 132 {
		t.Fatalf("bad signature format: %q (len %d)", sig, len(sig))
	}

	sig2, err := SignTypedData(pk, td)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sig != sig2 {
		t.Fatal("signing the same typed data must be deterministic")
	}
}

func TestCreateAuthTypedData(t *testing.T) {
	td := CreateAuthTypedData("0x0000000000000000000000000000000000000001", types.ChainPolygon, 1700000000, 0)
	if td.PrimaryType != "ClobAuth" {
		t.Fatalf("primary type: %q", td.PrimaryType)
	}
	if td.Message["message"] != MsgToSign {
		t.Fatalf("attestation message: %v", td.Message["message"])
	}
	if td.Message["timestamp"] != "1700000000" {
		t.Fatalf("timestamp must be a string of unix seconds: %v", td.Message["timestamp"])
	}
	if _, err := HashTypedData(td); err != nil {
		t.Fatalf("auth typed data must hash: %v", err)
	}
}
