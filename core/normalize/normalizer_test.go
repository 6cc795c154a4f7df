package normalize

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want NameKey
	}{
		{"", ""},
		{"Valley of 10", "valley of 10"},
		{"  Valley   of\t10 ", "valley of 10"},
		{"valley_of-10", "valley of 10"},
		{"valley__of---10", "valley of 10"},
		{"Wiegele\u2019s", "wiegele's"},
		{"Wiegele\u2018s", "wiegele's"},
		{"Wiegele\u00e2\u20ac\u2122s", "wiegele's"},
		{"WIEGELE\u00c2\u20ac\u2122S", "wiegele's"},
		{"\u00c2\u20ac\u2122", "'"},
		{"North American Chair", "north american chair"},
		{"Lone Pine - Upper", "lone pine upper"},
		{"-_-", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "Valley of 10", "Wiegele\u2019s_Way", "  A--B  c ", "Upper Mystic", "ÉLAN Run",
		"tube-park-liftletter", "Ça\tva",
		"WIEGELE\u00c2\u20ac\u2122S", "\u00c2\u20ac\u2122", "\u00e2\u20ac\u2122",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(string(once)); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestApostropheIsPreserved(t *testing.T) {
	if Normalize("Wiegele's") == Normalize("Wiegeles") {
		t.Fatal("apostrophe should survive normalization")
	}
	if LooseKey(Normalize("Wiegele's")) != LooseKey(Normalize("Wiegeles")) {
		t.Fatal("LooseKey should ignore apostrophes")
	}
}

func TestIdentify(t *testing.T) {
	tests := map[string]string{
		"Valley of 10":          "valley-of-10",
		"Henderson\u2019s Turn": "henderson's-turn",
		"north_american_lift":   "north-american-lift",
		"":                      "",
	}
	for in, want := range tests {
		if got := Identify(in); got != want {
			t.Errorf("Identify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Lone\u00a0Pine\u2019s  ", "Lone Pine's"},
		{"WIEGELE\u00c2\u20ac\u2122S RUN", "WIEGELE'S RUN"},
		{"Wiegele\u00e2\u20ac\u2122s", "Wiegele's"},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
