package geom

import (
	"math"
	"testing"
)

func TestPoint_Axis(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		idx      int
		expected float64
	}{
		{name: "x", p: NewPoint(1, 2), idx: AxisX, expected: 1},
		{name: "y", p: NewPoint(1, 2), idx: AxisY, expected: 2},
		{name: "fractional_x", p: NewPoint(0.9, 0.6), idx: 0, expected: 0.9},
		{name: "fractional_y", p: NewPoint(0.9, 0.6), idx: 1, expected: 0.6},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := test.p.Axis(test.idx)
			if got != test.expected {
				t.Errorf("axis specified incorrectly, got: %f, expected: %f", got, test.expected)
			}
		})
	}
}

func TestPoint_Dimensions(t *testing.T) {
	t.Parallel()
	p := NewPoint(1, 2)
	if p.Dimensions() != 2 {
		t.Errorf("the dimension is incorrect got: %v, expected: %v", p.Dimensions(), 2)
	}
	slice := p.Points()
	if len(slice) != 2 || slice[0] != 1 || slice[1] != 2 {
		t.Errorf("conversion to []float64 got: %v, expected: %v", slice, []float64{1, 2})
	}
}

func TestPoint_SubAdd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		p           Point
		p1          Point
		expectedSub Point
		expectedAdd Point
	}{
		{
			name:        "integral",
			p:           NewPoint(10, 20),
			p1:          NewPoint(1, 2),
			expectedSub: NewPoint(9, 18),
			expectedAdd: NewPoint(11, 22),
		},
		{
			name:        "negative",
			p:           NewPoint(-1, 4),
			p1:          NewPoint(2, -3),
			expectedSub: NewPoint(-3, 7),
			expectedAdd: NewPoint(1, 1),
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.p.Sub(test.p1); !got.Equal(test.expectedSub) {
				t.Errorf("compute Sub, got: %v, expected: %v", got, test.expectedSub)
			}
			if got := test.p.Add(test.p1); !got.Equal(test.expectedAdd) {
				t.Errorf("compute Add, got: %v, expected: %v", got, test.expectedAdd)
			}
		})
	}
}

func TestPoint_Less(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        Point
		p1       Point
		expected bool
	}{
		{name: "x_less", p: NewPoint(1, 9), p1: NewPoint(2, 0), expected: true},
		{name: "x_greater", p: NewPoint(3, 0), p1: NewPoint(2, 9), expected: false},
		{name: "y_tiebreak", p: NewPoint(1, 1), p1: NewPoint(1, 2), expected: true},
		{name: "equal", p: NewPoint(1, 1), p1: NewPoint(1, 1), expected: false},
	}
	for _, test := range tests {
		if got := test.p.Less(test.p1); got != test.expected {
			t.Errorf("the comparison of points %s, got: %v, expected: %v", test.name, got, test.expected)
		}
	}
}

func TestPoint_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		p        Point
		expected string
	}{
		{p: NewPoint(10, 20), expected: "(10, 20)"},
		{p: NewPoint(0.9, 0.6), expected: "(0.9, 0.6)"},
		{p: NewPoint(-1.5, 0), expected: "(-1.5, 0)"},
		{p: NewPoint(math.NaN(), 1), expected: "(NaN, 1)"},
	}
	for _, test := range tests {
		if got := test.p.String(); got != test.expected {
			t.Errorf("point formatting, got: %s, expected: %s", got, test.expected)
		}
	}
}
