package simid

import (
	"errors"
	"testing"
)

func TestUserLen(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want int
	}{
		{"NAI", "1001010123456789@realm", 16},
		{"no realm", "1001010123456789", 16},
		{"realm only", "@realm", 0},
		{"empty", "", 0},
		{"multiple at", "user@a@b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserLen([]byte(tt.id)); got != tt.want {
				t.Errorf("UserLen(%q) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestUserLenHonorsSliceBounds(t *testing.T) {
	// スライス外の'@'は見ない
	buf := []byte("1001010123456789@realm")
	if got := UserLen(buf[:10]); got != 10 {
		t.Errorf("UserLen = %d, want 10", got)
	}
}

func TestSplitNAI(t *testing.T) {
	user, domain := SplitNAI([]byte("0001010123456789@example.com"))
	if string(user) != "0001010123456789" {
		t.Errorf("user: got %q", user)
	}
	if string(domain) != "@example.com" {
		t.Errorf("domain: got %q", domain)
	}

	// ユーザー部への追記でドメイン部が壊れないこと
	_ = append(user, 'X')
	if string(domain) != "@example.com" {
		t.Errorf("domain overwritten: %q", domain)
	}
}

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		tag        byte
		wantType   IdentityType
		wantMethod MethodHint
	}{
		{'0', IdentityTypePermanent, MethodHintAKA},
		{'1', IdentityTypePermanent, MethodHintSIM},
		{'2', IdentityTypePseudonym, MethodHintAKA},
		{'3', IdentityTypePseudonym, MethodHintSIM},
		{'4', IdentityTypeFastReauth, MethodHintAKA},
		{'5', IdentityTypeFastReauth, MethodHintSIM},
		{'6', IdentityTypePseudonym, MethodHintAKA},
		{'7', IdentityTypePseudonym, MethodHintSIM},
	}

	if len(tests) != len(tagTable) {
		t.Fatalf("tagTable has %d entries, test covers %d", len(tagTable), len(tests))
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			gotType, gotMethod, err := Classify([]byte{tt.tag})
			if err != nil {
				t.Fatalf("予期しないエラー: %v", err)
			}
			if gotType != tt.wantType {
				t.Errorf("Type: got %v, want %v", gotType, tt.wantType)
			}
			if gotMethod != tt.wantMethod {
				t.Errorf("Method: got %v, want %v", gotMethod, tt.wantMethod)
			}
		})
	}
}

func TestClassifyOutsideAlphabet(t *testing.T) {
	for c := 0; c < 256; c++ {
		if _, ok := tagTable[byte(c)]; ok {
			continue
		}
		gotType, gotMethod, err := Classify([]byte{byte(c), '1', '2'})
		if !errors.Is(err, ErrUnrecognizedFormat) {
			t.Errorf("Classify(%q): got %v, want ErrUnrecognizedFormat", c, err)
		}
		if gotType != IdentityTypeUnknown || gotMethod != MethodHintUnknown {
			t.Errorf("Classify(%q): got (%v, %v), want Unknown", c, gotType, gotMethod)
		}
	}
}

func TestClassifyEmpty(t *testing.T) {
	for _, id := range []string{"", "@realm"} {
		if _, _, err := Classify([]byte(id)); !errors.Is(err, ErrUnrecognizedFormat) {
			t.Errorf("Classify(%q): got %v, want ErrUnrecognizedFormat", id, err)
		}
	}
}

func TestClassifyFullNAI(t *testing.T) {
	gotType, gotMethod, err := Classify([]byte("5reauth-id@wlan.mnc001.mcc001.3gppnetwork.org"))
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if gotType != IdentityTypeFastReauth || gotMethod != MethodHintSIM {
		t.Errorf("got (%v, %v), want (Fastauth, SIM)", gotType, gotMethod)
	}
}

func TestPseudonymTag(t *testing.T) {
	tests := []struct {
		user    string
		want    uint8
		wantErr error
	}{
		{"A", 0, nil},
		{"Z", 25, nil},
		{"a", 26, nil},
		{"z", 51, nil},
		{"0", 52, nil},
		{"6abc", 58, nil},
		{"7abc", 59, nil},
		{"+", 62, nil},
		{"/", 63, nil},
		{"-", 0, ErrUnrecognizedFormat},
		{"=", 0, ErrUnrecognizedFormat},
		{"", 0, ErrUnrecognizedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			got, err := PseudonymTag([]byte(tt.user))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("予期しないエラー: %v", err)
			}
			if got != tt.want {
				t.Errorf("PseudonymTag(%q) = %d, want %d", tt.user, got, tt.want)
			}
		})
	}
}

func TestPseudonymKeyIndex(t *testing.T) {
	// 2文字目の上位4bitが鍵インデックス
	// 'M' = 12 = 0b001100 → 3
	id := "7M" + "AAAAAAAAAAAAAAAAAAAAA" + "@example.com"
	got, err := PseudonymKeyIndex([]byte(id))
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if got != 3 {
		t.Errorf("PseudonymKeyIndex = %d, want 3", got)
	}

	// '/' = 63 → 15
	got, err = PseudonymKeyIndex([]byte("6/" + "AAAAAAAAAAAAAAAAAAAAA"))
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if got != 15 {
		t.Errorf("PseudonymKeyIndex = %d, want 15", got)
	}
}

func TestPseudonymKeyIndexWrongLength(t *testing.T) {
	for _, id := range []string{"7MAAAA@realm", "7MAAAAAAAAAAAAAAAAAAAAAA@realm"} {
		if _, err := PseudonymKeyIndex([]byte(id)); !errors.Is(err, ErrWrongLength) {
			t.Errorf("PseudonymKeyIndex(%q): got %v, want ErrWrongLength", id, err)
		}
	}
}

func TestTagForMethod(t *testing.T) {
	if tag, err := TagForMethod(MethodHintSIM); err != nil || tag != 59 {
		t.Errorf("SIM: got (%d, %v), want (59, nil)", tag, err)
	}
	if tag, err := TagForMethod(MethodHintAKA); err != nil || tag != 58 {
		t.Errorf("AKA: got (%d, %v), want (58, nil)", tag, err)
	}
	if _, err := TagForMethod(MethodHintUnknown); !errors.Is(err, ErrMissingMethodHint) {
		t.Errorf("Unknown: got %v, want ErrMissingMethodHint", err)
	}
}

func TestMethodForTag(t *testing.T) {
	if m, err := MethodForTag(59); err != nil || m != MethodHintSIM {
		t.Errorf("59: got (%v, %v), want (SIM, nil)", m, err)
	}
	if m, err := MethodForTag(58); err != nil || m != MethodHintAKA {
		t.Errorf("58: got (%v, %v), want (AKA, nil)", m, err)
	}
	for _, tag := range []uint8{0, 52, 57, 60, 63} {
		if _, err := MethodForTag(tag); !errors.Is(err, ErrUnexpectedTag) {
			t.Errorf("%d: got %v, want ErrUnexpectedTag", tag, err)
		}
	}
}

func TestPermanentTag(t *testing.T) {
	if c, _ := PermanentTag(MethodHintSIM); c != '1' {
		t.Errorf("SIM: got %q, want '1'", c)
	}
	if c, _ := PermanentTag(MethodHintAKA); c != '0' {
		t.Errorf("AKA: got %q, want '0'", c)
	}
	if _, err := PermanentTag(MethodHintUnknown); !errors.Is(err, ErrMissingMethodHint) {
		t.Errorf("Unknown: got %v, want ErrMissingMethodHint", err)
	}
}

func TestIsNAI(t *testing.T) {
	if !IsNAI([]byte("1001@realm")) {
		t.Error("IsNAI(1001@realm) = false, want true")
	}
	if IsNAI([]byte("1001")) {
		t.Error("IsNAI(1001) = true, want false")
	}
}

func TestErrKeyIndexOutOfRange(t *testing.T) {
	if !errors.Is(ErrKeyIndexOutOfRange, ErrEncodingOverflow) {
		t.Error("ErrKeyIndexOutOfRange should match ErrEncodingOverflow")
	}
}

func TestStringNames(t *testing.T) {
	types := map[IdentityType]string{
		IdentityTypeUnknown:    "Unknown",
		IdentityTypePermanent:  "Permanent",
		IdentityTypePseudonym:  "Pseudonym",
		IdentityTypeFastReauth: "Fastauth",
	}
	for v, want := range types {
		if got := v.String(); got != want {
			t.Errorf("IdentityType(%d).String() = %q, want %q", v, got, want)
		}
	}

	methods := map[MethodHint]string{
		MethodHintUnknown: "Unknown",
		MethodHintSIM:     "SIM",
		MethodHintAKA:     "AKA",
	}
	for v, want := range methods {
		if got := v.String(); got != want {
			t.Errorf("MethodHint(%d).String() = %q, want %q", v, got, want)
		}
	}
}
