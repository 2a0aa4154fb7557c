package signing

import (
	"errors"
	"testing"

	"github.com/betfront/gotrade/clob/types"
)

func testCreds() *types.ApiKeyCreds {
	return &types.ApiKeyCreds{
		Key:        "11111111-2222-3333-4444-555555555555",
		Secret:     testSecretStd,
		Passphrase: "passphrase",
	}
}

func TestCreateL2Headers(t *testing.T) {
	ts := int64(1700000000)
	args := &types.L2HeaderArgs{Method: "POST", RequestPath: "/order"}

	h, err := CreateL2Headers("0x0000000000000000000000000000000000000001", testCreds(), args, &ts)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if h.PolyAddress != "0x0000000000000000000000000000000000000001" {
		t.Fatalf("address: %q", h.PolyAddress)
	}
	if h.PolyTimestamp != "1700000000" {
		t.Fatalf("timestamp must be unix seconds string: %q", h.PolyTimestamp)
	}
	if h.PolyAPIKey != testCreds().Key || h.PolyPassphrase != testCreds().Passphrase {
		t.Fatal("credentials must pass through unchanged")
	}

	// 头中的签名必须与直接计算的 HMAC 一致
	want, err := BuildPolyHmacSignature(testCreds().Secret, ts, "POST", "/order", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if h.PolySignature != want {
		t.Fatalf("signature mismatch: %q vs %q", h.PolySignature, want)
	}
}

func TestCreateL2Headers_MissingCredentials(t *testing.T) {
	args := &types.L2HeaderArgs{Method: "GET", RequestPath: "/balance"}
	for _, creds := range []*types.ApiKeyCreds{
		nil,
		{},
		{Key: "k", Secret: testSecretStd}, // passphrase 缺失
	} {
		_, err := CreateL2Headers("0x01", creds, args, nil)
		if !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("creds %+v: want ErrMissingCredentials, got %v", creds, err)
		}
	}
}

func TestCreateBuilderHeaders(t *testing.T) {
	ts := int64(1700000000)
	args := &types.L2HeaderArgs{Method: "POST", RequestPath: "/order"}

	h, err := CreateBuilderHeaders(testCreds(), args, &ts)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if h.PolyBuilderTimestamp != "1700000000" {
		t.Fatalf("timestamp: %q", h.PolyBuilderTimestamp)
	}
	if h.PolyBuilderAPIKey != testCreds().Key {
		t.Fatalf("api key: %q", h.PolyBuilderAPIKey)
	}

	if _, err := CreateBuilderHeaders(&types.ApiKeyCreds{}, args, &ts); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("want ErrMissingCredentials, got %v", err)
	}
}

func TestInjectBuilderHeaders(t *testing.T) {
	ts := int64(1700000000)
	args := &types.L2HeaderArgs{Method: "POST", RequestPath: "/order"}

	l2, err := CreateL2Headers("0x01", testCreds(), args, &ts)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	bh, err := CreateBuilderHeaders(testCreds(), args, &ts)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	combined := InjectBuilderHeaders(l2, bh)
	if combined.PolySignature != l2.PolySignature {
		t.Fatal("user signature must survive injection")
	}
	if combined.PolyBuilderSignature != bh.PolyBuilderSignature {
		t.Fatal("builder signature must survive injection")
	}
}
