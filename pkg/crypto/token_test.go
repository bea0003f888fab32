package crypto

import "testing"

func TestGenerateHashedToken(t *testing.T) {
	pair, err := GenerateHashedToken(32)
	if err != nil {
		t.Fatalf("GenerateHashedToken failed: %v", err)
	}

	if pair.Token == "" {
		t.Error("token should not be empty")
	}
	if pair.Hash == "" {
		t.Error("hash should not be empty")
	}
	if pair.Token == pair.Hash {
		t.Error("token and hash should differ")
	}
	if pair.Hash != HashToken(pair.Token) {
		t.Error("hash should be the sha256 of the token")
	}
}

func TestGenerateHashedTokenUnique(t *testing.T) {
	first, err := GenerateHashedToken(32)
	if err != nil {
		t.Fatalf("GenerateHashedToken failed: %v", err)
	}
	second, err := GenerateHashedToken(32)
	if err != nil {
		t.Fatalf("GenerateHashedToken failed: %v", err)
	}

	if first.Token == second.Token {
		t.Error("two generated tokens should differ")
	}
}

func TestVerifyToken(t *testing.T) {
	pair, err := GenerateHashedToken(32)
	if err != nil {
		t.Fatalf("GenerateHashedToken failed: %v", err)
	}

	ok, err := VerifyToken(pair.Token, pair.Hash)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if !ok {
		t.Error("VerifyToken should accept the matching pair")
	}

	ok, err = VerifyToken("tampered", pair.Hash)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if ok {
		t.Error("VerifyToken should reject a different token")
	}

	if _, err := VerifyToken("", pair.Hash); err == nil {
		t.Error("VerifyToken should error on empty token")
	}
	if _, err := VerifyToken(pair.Token, ""); err == nil {
		t.Error("VerifyToken should error on empty hash")
	}
}
