package types

import "testing"

func TestSideCode(t *testing.T) {
	// BUY = 0, SELL = 1，链上合约的编码
	if SideBuy.Code() != 0 {
		t.Fatalf("BUY code = %d", SideBuy.Code())
	}
	if SideSell.Code() != 1 {
		t.Fatalf("SELL code = %d", SideSell.Code())
	}
}

func TestSideIsValid(t *testing.T) {
	if !SideBuy.IsValid() || !SideSell.IsValid() {
		t.Fatal("BUY/SELL must be valid")
	}
	if Side("HOLD").IsValid() {
		t.Fatal("unknown side must be invalid")
	}
}

func TestOrderTypeIsValid(t *testing.T) {
	for _, ot := range []OrderType{OrderTypeGTC, OrderTypeFOK, OrderTypeGTD, OrderTypeFAK} {
		if !ot.IsValid() {
			t.Fatalf("%s must be valid", ot)
		}
	}
	if OrderType("SOMETIME").IsValid() {
		t.Fatal("unknown order type must be invalid")
	}
}

func TestApiKeyCredsIsComplete(t *testing.T) {
	complete := &ApiKeyCreds{Key: "k", Secret: "s", Passphrase: "p"}
	if !complete.IsComplete() {
		t.Fatal("complete creds must report complete")
	}

	var nilCreds *ApiKeyCreds
	if nilCreds.IsComplete() {
		t.Fatal("nil creds must report incomplete")
	}
	if (&ApiKeyCreds{Key: "k", Secret: "s"}).IsComplete() {
		t.Fatal("missing passphrase must report incomplete")
	}
}

func TestMarketIsValid(t *testing.T) {
	m := &Market{
		ConditionID: "0xcond",
		YesTokenID:  "1",
		NoTokenID:   "2",
	}
	if !m.IsValid() {
		t.Fatal("market with ids must be valid")
	}
	m.YesTokenID = ""
	if m.IsValid() {
		t.Fatal("market missing a token id must be invalid")
	}
}
