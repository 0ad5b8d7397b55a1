package imx

import "testing"

func TestPadCtl(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      PadConfig
		expected uint32
	}{
		{
			"all zero",
			PadConfig{},
			0,
		},
		{
			"pull-up input",
			PadConfig{Pull: Pull100KUp, PullEnable: true, Hysteresis: true},
			0x3<<8 | 1<<7 | 1<<6,
		},
		{
			"strong fast output",
			PadConfig{Slew: SlewFast, Drive: DriveX6},
			0x3,
		},
		{
			"slow weak output",
			PadConfig{Slew: SlewSlow, Drive: DriveX1},
			1 << 2,
		},
	}

	for _, tc := range testCases {
		if got := tc.cfg.PadCtl(); got != tc.expected {
			t.Errorf("%s: PadCtl() = %#x, want %#x", tc.name, got, tc.expected)
		}
	}
}

func TestMuxCtl(t *testing.T) {
	cfg := PadConfig{MuxMode: 5}
	if got := cfg.MuxCtl(); got != 5 {
		t.Errorf("MuxCtl() = %d, want 5", got)
	}
}
