package phone

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"01012345678", "1012345678"},
		{"+20 10 1234 5678", "1012345678"},
		{"2 010-1234-5678", "1012345678"},
		{"(010) 1234 5678", "1012345678"},
		{"10 1234 5678", "1012345678"},
		// Country code stripped before trunk zero; only one of each.
		{"20010", "010"},
		{"0", ""},
		{"2", ""},
		{"20", ""},
		{"+", ""},
		{"- ()", ""},
	}

	for _, tc := range cases {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "+20 10 1234 5678", "01012345678", "0", "2010", "12345"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", input, twice, once)
		}
	}
}

func TestSameNumber(t *testing.T) {
	if !SameNumber("+20 10 1234 5678", "01012345678") {
		t.Error("expected +20 and trunk-zero forms to match")
	}
	if SameNumber("", "") {
		t.Error("empty phones must never match each other")
	}
	if SameNumber("0", "2") {
		t.Error("phones that normalize to empty must never match")
	}
	if SameNumber("1012345678", "1087654321") {
		t.Error("distinct numbers must not match")
	}
}
