package tick

import "testing"

func TestSecToTicks(t *testing.T) {
	testCases := []struct {
		hz       uint32
		sec      float64
		expected Ticks
	}{
		{1000000, 0.5, 500000},
		{1000000, 1.0, 1000000},
		{1000, 0.0015, 2},      // 1.5 ticks rounds away from zero
		{1000, 0.00049999, 0},  // just below one half
		{8000000, 0.001, 8000}, // 1 ms at 8 MHz
		{32768, 1.0, 32768},    // RTC-style clock
	}

	for _, tc := range testCases {
		if got := SecToTicks(tc.hz, tc.sec); got != tc.expected {
			t.Errorf("SecToTicks(%d, %g) = %d, want %d",
				tc.hz, tc.sec, got, tc.expected)
		}
	}
}

func TestMsUsToTicks(t *testing.T) {
	if got := MsToTicks(1000000, 500); got != 500000 {
		t.Errorf("MsToTicks(1MHz, 500) = %d, want 500000", got)
	}
	if got := UsToTicks(1000000, 500); got != 500 {
		t.Errorf("UsToTicks(1MHz, 500) = %d, want 500", got)
	}
	if got := UsToTicks(32768, 1000000); got != 32768 {
		t.Errorf("UsToTicks(32768, 1e6) = %d, want 32768", got)
	}
}

func TestIntUsToTicks(t *testing.T) {
	testCases := []struct {
		hz       uint32
		us       uint32
		expected Ticks
	}{
		{1000000, 500000, 500000},
		{12000000, 1, 12},
		{32768, 1000000, 32768},
		{32768, 100, 3}, // 3.2768 truncates, float variant rounds to 3 too
		// The 64-bit intermediate must carry the full product: at the
		// maximum inputs us*hz is ~1.8e19 and still fits.
		{4294967295, 4294967295, Ticks(uint64(4294967295) * 4294967295 / 1000000)},
	}

	for _, tc := range testCases {
		if got := IntUsToTicks(tc.hz, tc.us); got != tc.expected {
			t.Errorf("IntUsToTicks(%d, %d) = %d, want %d",
				tc.hz, tc.us, got, tc.expected)
		}
	}
}

func TestIntegerFloatVariantsAgreeWithinOneTick(t *testing.T) {
	for _, hz := range []uint32{32768, 1000000, 12000000, 84000000} {
		for _, us := range []uint32{1, 3, 100, 999, 500000, 1000000} {
			i := IntUsToTicks(hz, us)
			f := UsToTicks(hz, float64(us))

			diff := int64(i) - int64(f)
			if diff < -1 || diff > 1 {
				t.Errorf("hz=%d us=%d: integer=%d float=%d differ by more than one tick",
					hz, us, i, f)
			}
		}
	}
}

func TestTicksToUsRoundTrip(t *testing.T) {
	// Round-tripping through the integer conversions may lose at most
	// one tick's worth of time.
	for _, hz := range []uint32{1000000, 12000000, 32768} {
		for _, us := range []uint32{0, 1, 50, 1000, 250000, 1000000} {
			back := TicksToUs(hz, IntUsToTicks(hz, us))

			tickUs := uint32(1000000/hz) + 1
			if back > us || us-back > tickUs {
				t.Errorf("hz=%d: round trip %d us -> %d us exceeds one tick",
					hz, us, back)
			}
		}
	}
}
