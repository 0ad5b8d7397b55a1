package digio

import "testing"

func TestOutputBasic(t *testing.T) {
	d := NewMemDriver()

	led, err := NewOutput(d, 13)
	if err != nil {
		t.Fatalf("NewOutput failed: %v", err)
	}

	if err := led.High(); err != nil {
		t.Fatalf("High failed: %v", err)
	}
	if v, _ := led.Value(); !v {
		t.Error("pin should read high after High()")
	}

	if err := led.Low(); err != nil {
		t.Fatalf("Low failed: %v", err)
	}
	if v, _ := led.Value(); v {
		t.Error("pin should read low after Low()")
	}

	if err := led.Toggle(); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if v, _ := led.Value(); !v {
		t.Error("pin should read high after Toggle()")
	}

	if err := led.Set(false); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, _ := led.Value(); v {
		t.Error("pin should read low after Set(false)")
	}
}

func TestInputPullAndInvert(t *testing.T) {
	d := NewMemDriver()

	btn, err := NewInput(d, 2, PullUp)
	if err != nil {
		t.Fatalf("NewInput failed: %v", err)
	}
	if v, _ := btn.Read(); !v {
		t.Error("pull-up input should idle high")
	}

	d.Drive(2, false)
	if v, _ := btn.Read(); v {
		t.Error("driven-low input should read low")
	}

	// Active-low button wired to ground through the switch.
	nbtn, err := NewInvertedInput(d, 3, PullUp)
	if err != nil {
		t.Fatalf("NewInvertedInput failed: %v", err)
	}
	if v, _ := nbtn.Read(); v {
		t.Error("idle active-low input should read false")
	}
	d.Drive(3, false)
	if v, _ := nbtn.Read(); !v {
		t.Error("pressed active-low input should read true")
	}
}

func TestMemDriverContract(t *testing.T) {
	d := NewMemDriver()

	if err := d.SetPin(7, true); err != ErrNotConfigured {
		t.Errorf("SetPin on unconfigured pin: %v, want ErrNotConfigured", err)
	}
	if _, err := d.GetPin(7); err != ErrNotConfigured {
		t.Errorf("GetPin on unconfigured pin: %v, want ErrNotConfigured", err)
	}

	d.ConfigureInput(7, PullNone)
	if err := d.SetPin(7, true); err != ErrNotOutput {
		t.Errorf("SetPin on input pin: %v, want ErrNotOutput", err)
	}
	if err := d.TogglePin(7); err != ErrNotOutput {
		t.Errorf("TogglePin on input pin: %v, want ErrNotOutput", err)
	}
}

func TestDriverRegistry(t *testing.T) {
	d := NewMemDriver()
	SetDriver(d)

	if MustDriver() != Driver(d) {
		t.Error("MustDriver did not return the registered driver")
	}
}
