package valueobject

import "testing"

func TestMaskPhoneBR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"11", "(11) "},
		{"119", "(11) 9"},
		{"119876", "(11) 9876"},
		{"1198765", "(11) 98765-"},
		{"11987654321", "(11) 98765-4321"},
		{"119876543219999", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"abc11def98765ghi4321", "(11) 98765-4321"},
	}
	for _, tc := range cases {
		if got := MaskPhoneBR(tc.in); got != tc.want {
			t.Errorf("MaskPhoneBR(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
