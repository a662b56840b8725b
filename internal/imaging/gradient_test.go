package imaging

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want RGBColor
	}{
		{"start", 0, Red},
		{"end", 1, Green},
		{"middle", 0.5, RGBColor{128, 128, 0}},
		{"below range clamps", -3, Red},
		{"above range clamps", 7, Green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(Red, Green, tt.t); got != tt.want {
				t.Errorf("Lerp(t=%v): got %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestLerp_RoundingSaturates(t *testing.T) {
	// 255*0.5 rounds up on both sides, so the sum would be 256 without saturation.
	got := Lerp(White, White, 0.5)
	if got != White {
		t.Errorf("got %v, want %v", got, White)
	}
}

func TestLinear(t *testing.T) {
	g := Linear(Red, Green)

	if got := g.ColorAt(0, 1); got != Red {
		t.Errorf("single element path: got %v, want red", got)
	}
	if got := g.ColorAt(0, 4); got != Red {
		t.Errorf("index 0: got %v, want red", got)
	}
	if got := g.ColorAt(2, 4); got != (RGBColor{128, 128, 0}) {
		t.Errorf("index 2 of 4: got %v", got)
	}
	if got := g.ColorAt(4, 4); got != Green {
		t.Errorf("index == total: got %v, want green", got)
	}
	if got := g.ColorAt(0, 0); got != Red {
		t.Errorf("empty total: got %v, want red", got)
	}
}

func TestAlternating(t *testing.T) {
	g := Alternating(Blue, Cyan)

	for i := 0; i < 6; i++ {
		want := Blue
		if i%2 == 1 {
			want = Cyan
		}
		if got := g.ColorAt(float64(i), 6); got != want {
			t.Errorf("index %d: got %v, want %v", i, got, want)
		}
	}
}

func TestLab_Endpoints(t *testing.T) {
	g := Lab(Blue, Yellow)

	if got := g.ColorAt(0, 10); got != Blue {
		t.Errorf("start: got %v, want %v", got, Blue)
	}
	if got := g.ColorAt(10, 10); got != Yellow {
		t.Errorf("end: got %v, want %v", got, Yellow)
	}
	mid := g.ColorAt(5, 10)
	if mid == Blue || mid == Yellow {
		t.Errorf("middle should be blended, got %v", mid)
	}
}

func TestNewGradient(t *testing.T) {
	for _, kind := range []string{"", KindLinear, KindAlternating, KindLab} {
		if _, err := NewGradient(GradientSpec{Kind: kind, From: Red, To: Blue}); err != nil {
			t.Errorf("NewGradient(%q) failed: %v", kind, err)
		}
	}
	if _, err := NewGradient(GradientSpec{Kind: "radial"}); err == nil {
		t.Error("NewGradient should reject unknown kinds")
	}
}

func TestPresets(t *testing.T) {
	p := BuiltinPresets()

	for _, name := range []string{"red-green", "blue-cyan", "blue-cyan-alternating", DefaultGradient} {
		if _, err := p.Lookup(name); err != nil {
			t.Errorf("Lookup(%s) failed: %v", name, err)
		}
	}
	if _, err := p.Lookup("nope"); err == nil {
		t.Error("Lookup should fail for unknown preset")
	}

	if err := p.Add(GradientSpec{Name: "sunset", Kind: KindLab, From: Yellow, To: Magenta}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := p.Add(GradientSpec{Kind: KindLinear}); err == nil {
		t.Error("Add should reject unnamed preset")
	}
	if err := p.Add(GradientSpec{Name: "bad", Kind: "spiral"}); err == nil {
		t.Error("Add should reject unknown kind")
	}

	list := p.List()
	if len(list) != 4 {
		t.Fatalf("List: got %d presets, want 4", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Errorf("List not sorted: %s before %s", list[i-1].Name, list[i].Name)
		}
	}

	// BuiltinPresets must hand out independent copies.
	if _, ok := BuiltinPresets()["sunset"]; ok {
		t.Error("BuiltinPresets shares state between calls")
	}
}
