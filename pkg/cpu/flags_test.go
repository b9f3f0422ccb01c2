package cpu

import "testing"

// TestFlagTables verifies the precomputed tables against their definitions.
func TestFlagTables(t *testing.T) {
	BuildTables()

	for v := 0; v < 256; v++ {
		want := uint8(v) & (FlagS | Flag5 | Flag3)
		if v == 0 {
			want |= FlagZ
		}
		if SZ53[v] != want {
			t.Errorf("SZ53[%02X] = %02X, want %02X", v, SZ53[v], want)
		}
		if SZ53P[v] != SZ53[v]|Parity[v] {
			t.Errorf("SZ53P[%02X] = %02X, want SZ53|Parity = %02X", v, SZ53P[v], SZ53[v]|Parity[v])
		}

		ones := 0
		for b := v; b != 0; b >>= 1 {
			ones += b & 1
		}
		wantP := uint8(0)
		if ones%2 == 0 {
			wantP = FlagP
		}
		if Parity[v] != wantP {
			t.Errorf("Parity[%02X] = %02X, want %02X", v, Parity[v], wantP)
		}
	}
}

// TestFlagTableSpotValues pins a few entries so a table rebuild bug cannot
// hide behind a matching re-derivation.
func TestFlagTableSpotValues(t *testing.T) {
	if SZ53[0] != FlagZ {
		t.Errorf("SZ53[0] = %02X, want Z only", SZ53[0])
	}
	if SZ53[0x80]&FlagS == 0 {
		t.Error("SZ53[80] should have S")
	}
	if SZ53[0xFF] != FlagS|Flag5|Flag3 {
		t.Errorf("SZ53[FF] = %02X", SZ53[0xFF])
	}
	if Parity[0x01] != 0 || Parity[0x03] != FlagP {
		t.Error("parity of 01/03 wrong")
	}
}

func TestCarryTables(t *testing.T) {
	// The half-carry/overflow tables are fixed contract values.
	wantHA := [8]uint8{0, FlagH, FlagH, FlagH, 0, 0, 0, FlagH}
	wantHS := [8]uint8{0, 0, FlagH, 0, FlagH, 0, FlagH, FlagH}
	wantOA := [8]uint8{0, 0, 0, FlagV, FlagV, 0, 0, 0}
	wantOS := [8]uint8{0, FlagV, 0, 0, 0, 0, FlagV, 0}
	if HalfCarryAdd != wantHA || HalfCarrySub != wantHS {
		t.Error("half-carry tables changed")
	}
	if OverflowAdd != wantOA || OverflowSub != wantOS {
		t.Error("overflow tables changed")
	}
}

// TestBuildTablesIdempotent calls BuildTables repeatedly and checks the
// tables stay stable.
func TestBuildTablesIdempotent(t *testing.T) {
	before := SZ53P
	BuildTables()
	BuildTables()
	if SZ53P != before {
		t.Error("BuildTables is not idempotent")
	}
}
