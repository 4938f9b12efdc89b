package auth

import "testing"

func TestHashPassword_VerifiesAndSalts(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == "password123" || h2 == "password123" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	if !CheckPassword("password123", h1) {
		t.Fatalf("CheckPassword must accept the original password")
	}
	if !CheckPassword("password123", h2) {
		t.Fatalf("CheckPassword must accept the original password for the second hash")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("Tr0ub4dor&3", h) {
		t.Fatalf("CheckPassword must reject a different password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("whatever", "not-a-bcrypt-hash") {
		t.Fatalf("CheckPassword must reject malformed hashes")
	}
	if CheckPassword("whatever", "") {
		t.Fatalf("CheckPassword must reject an empty hash")
	}
}
