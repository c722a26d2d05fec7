package configrom

import "testing"

func TestFindEntriesMatchesDirectoryEntryByKeyName(t *testing.T) {
	buf := buildSampleROM(0)
	set, err := Discover(buf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	Normalize(set, len(buf))

	tests := []struct {
		name       string
		query      string
		wantOffset int
		wantKey    string
	}{
		{"descriptor entry in the root directory", "descriptor", 16 + configRomOffset, "descriptor"},
		{"specifier id entry in the sub-directory", "specifier", 24 + configRomOffset, "specifier id"},
		{"case insensitive", "DESCRIPTOR", 16 + configRomOffset, "descriptor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := FindEntries(set, tt.query)
			var found bool
			for _, m := range matches {
				if m.Offset == tt.wantOffset && m.KeyName == tt.wantKey {
					found = true
				}
			}
			if !found {
				t.Errorf("FindEntries(%q) = %+v, want a match at offset %#x named %q", tt.query, matches, tt.wantOffset, tt.wantKey)
			}
		})
	}
}

func TestFindEntriesNoMatch(t *testing.T) {
	buf := buildSampleROM(0)
	set, err := Discover(buf)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	Normalize(set, len(buf))

	matches := FindEntries(set, "zzz_no_such_key_zzz")
	if len(matches) != 0 {
		t.Errorf("FindEntries() with an unmatched query returned %+v, want none", matches)
	}
}
