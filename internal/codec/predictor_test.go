package codec

import "testing"

func TestPredictFirstRowAndColumn(t *testing.T) {
	width := 4
	samples := []uint16{10, 20, 30, 40, 50, 60, 70, 80}

	tests := []struct {
		i    int
		want uint16
	}{
		{0, 0},  // very first pixel: no previous sample.
		{1, 10}, // first row: falls back to the left neighbor.
		{3, 30},
		{4, 40}, // first column: falls back to the previous sample (end of the row above).
	}
	for _, tt := range tests {
		if got := Predict(samples, tt.i, width); got != tt.want {
			t.Errorf("Predict(samples, %d, %d) = %d, want %d", tt.i, width, got, tt.want)
		}
	}
}

func TestPredictInterior(t *testing.T) {
	// width 3 grid:
	//   0  1  2
	//   3  4  5
	// predicting index 4: A=sample(3)=10, B=sample(1)=20, C=sample(0)=5.
	// p = 10+20-5 = 25. dA=15, dB=5, dC=20 -> B wins.
	width := 3
	samples := []uint16{5, 20, 0, 10, 0, 0}
	if got := Predict(samples, 4, width); got != 20 {
		t.Errorf("Predict = %d, want 20 (B)", got)
	}

	// Three-way tie: A=10, B=10, C=10 -> p=10, dA=dB=dC=0 -> A is taken by
	// tie-break order; all three neighbors hold the same value.
	samples2 := []uint16{10, 10, 0, 10, 0, 0}
	if got := Predict(samples2, 4, width); got != 10 {
		t.Errorf("Predict tie = %d, want 10 (A)", got)
	}
}

func TestPredictWraparound(t *testing.T) {
	// A+B-C must wrap modulo 65536 rather than clamp or panic.
	width := 2
	samples := []uint16{0x0000, 0x0002, 0xFFFF, 0}
	// predicting index 3: A=sample(2)=0xFFFF, B=sample(1)=2, C=sample(0)=0.
	// p = 0xFFFF + 2 - 0 = 0x10001, which wraps to 1: dA=65534, dB=1, dC=1
	// -> B. Without the wrap p would be 65537 and A would win instead.
	got := Predict(samples, 3, width)
	if got != 2 {
		t.Fatalf("Predict wraparound = %d, want 2 (B)", got)
	}
}

func TestCacheStoreLoadHas(t *testing.T) {
	var c Cache
	if c.Has(5) {
		t.Fatal("fresh cache must not report 5 as cached")
	}
	c.Store(5)
	if !c.Has(5) {
		t.Fatal("value just stored must be reported as cached")
	}
	if got := c.Load(5 % cacheSize); got != 5 {
		t.Fatalf("Load(5%%64) = %d, want 5", got)
	}
	// A later store to the same slot evicts the earlier value.
	c.Store(5 + cacheSize)
	if c.Has(5) {
		t.Fatal("slot was overwritten by a colliding residue; old value must no longer be cached")
	}
}
