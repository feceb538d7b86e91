package ad_test

import (
	"testing"

	"github.com/quantgrad/quantgrad/internal/ad"
)

// TestTape_Declarations tests Var, Vars and Constant bookkeeping.
func TestTape_Declarations(t *testing.T) {
	tape := ad.New()

	if tape.Len() != 0 {
		t.Errorf("new tape Len() = %d, want 0", tape.Len())
	}

	x := tape.Var(3.0)
	if x.Value() != 3.0 {
		t.Errorf("Var value = %v, want 3.0", x.Value())
	}
	if tape.Len() != 1 {
		t.Errorf("Len() after Var = %d, want 1", tape.Len())
	}

	c := tape.Constant(2.5)
	if c.Value() != 2.5 {
		t.Errorf("Constant value = %v, want 2.5", c.Value())
	}

	vars := tape.Vars(1, 2, 3)
	if len(vars) != 3 {
		t.Fatalf("Vars returned %d handles, want 3", len(vars))
	}
	for i, v := range vars {
		if v.Value() != float64(i+1) {
			t.Errorf("Vars[%d] value = %v, want %d", i, v.Value(), i+1)
		}
	}
	if tape.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tape.Len())
	}
}

// TestTape_RecordingAppends tests that arithmetic appends nodes and never
// mutates existing ones.
func TestTape_RecordingAppends(t *testing.T) {
	tape := ad.New()
	x := tape.Var(2.0)

	y := x.Mul(x)
	if tape.Len() != 2 {
		t.Errorf("Len() after Mul = %d, want 2", tape.Len())
	}
	if y.Value() != 4.0 {
		t.Errorf("(x*x) value = %v, want 4.0", y.Value())
	}
	// The original handle still sees its own value.
	if x.Value() != 2.0 {
		t.Errorf("x value after recording = %v, want 2.0", x.Value())
	}
}

// TestTape_Isolation tests that independent tapes share no state.
func TestTape_Isolation(t *testing.T) {
	t1 := ad.New()
	t2 := ad.New()

	x := t1.Var(1.0)
	y := t2.Var(2.0)
	x.Exp()
	y.Exp()
	y.Exp()

	if t1.Len() != 2 {
		t.Errorf("t1.Len() = %d, want 2", t1.Len())
	}
	if t2.Len() != 3 {
		t.Errorf("t2.Len() = %d, want 3", t2.Len())
	}
}

// TestVariable_CrossTapePanics tests the fail-fast check on mixing tapes.
func TestVariable_CrossTapePanics(t *testing.T) {
	t1 := ad.New()
	t2 := ad.New()
	x := t1.Var(1.0)
	y := t2.Var(2.0)

	defer func() {
		if recover() == nil {
			t.Error("Add across tapes did not panic")
		}
	}()
	x.Add(y)
}

// TestVariable_ZeroValuePanics tests that an unbound Variable fails fast.
func TestVariable_ZeroValuePanics(t *testing.T) {
	var x ad.Variable

	defer func() {
		if recover() == nil {
			t.Error("operation on zero Variable did not panic")
		}
	}()
	x.Sin()
}
