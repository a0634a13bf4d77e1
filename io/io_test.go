package io

import "testing"

func TestOpenBusAlwaysReleased(t *testing.T) {
	p := NewOpenBus()
	p.Latch(true)
	for i := 0; i < 10; i++ {
		if got := p.Input(); got != 1 {
			t.Errorf("Input() iteration %d = %d, want 1", i, got)
		}
	}
}

func TestButtonsShiftsOutPressedOrder(t *testing.T) {
	var b Buttons
	b.Pressed[0] = true  // A
	b.Pressed[3] = true  // Start
	b.Pressed[7] = false // Right

	b.Latch(true)
	b.Latch(false)

	var got [8]uint8
	for i := range got {
		got[i] = b.Input()
	}
	want := [8]uint8{1, 0, 0, 1, 0, 0, 0, 0}
	if got != want {
		t.Errorf("shift sequence = %v, want %v", got, want)
	}
	// Reading past the 8th button reports released (1), matching the shift
	// register reading all-1s once exhausted.
	if got := b.Input(); got != 1 {
		t.Errorf("9th Input() = %d, want 1", got)
	}
}

func TestButtonsStrobeHighFreezesOnFirstButton(t *testing.T) {
	var b Buttons
	b.Pressed[0] = true
	b.Latch(true)
	for i := 0; i < 3; i++ {
		if got := b.Input(); got != 1 {
			t.Errorf("Input() while strobed high, call %d = %d, want 1", i, got)
		}
	}
}

func TestButtonsRelatchResetsIndex(t *testing.T) {
	var b Buttons
	b.Pressed[2] = true
	b.Latch(true)
	b.Latch(false)
	b.Input()
	b.Input() // now at index 2, next read would be the pressed button

	b.Latch(true)
	b.Latch(false)
	if got := b.Input(); got != 0 {
		t.Errorf("Input() after relatch = %d, want 0 (button 0, unpressed)", got)
	}
}
