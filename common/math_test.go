package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float32
		want    float32
	}{
		{"start", 0, 10, 0, 0},
		{"quarter", 0, 10, 0.25, 2.5},
		{"end", 0, 10, 1, 10},
		{"descending", 10, 0, 0.5, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); got != c.want {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(float32(-1), 0, 1); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(float32(2), 0, 1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}
