package vec

import "testing"

func TestConstructors(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		v := New[int]()
		if v.Size() != 0 || v.Capacity() != 0 {
			t.Errorf("size/capacity = %d/%d, want 0/0", v.Size(), v.Capacity())
		}
		if v.items.Held() {
			t.Error("empty vector holds a buffer")
		}
	})

	t.Run("WithCapacity", func(t *testing.T) {
		v := WithCapacity[int](8)
		if v.Size() != 0 {
			t.Errorf("size = %d, want 0", v.Size())
		}
		if v.Capacity() != 8 {
			t.Errorf("capacity = %d, want 8", v.Capacity())
		}
	})

	t.Run("WithCapacityZero", func(t *testing.T) {
		v := WithCapacity[int](0)
		if v.Capacity() != 0 || v.items.Held() {
			t.Error("WithCapacity(0) allocated a buffer")
		}
	})

	t.Run("WithSize", func(t *testing.T) {
		v := WithSize[int](5)
		if v.Size() != 5 || v.Capacity() != 5 {
			t.Errorf("size/capacity = %d/%d, want 5/5", v.Size(), v.Capacity())
		}
		for i := 0; i < v.Size(); i++ {
			if v.Get(i) != 0 {
				t.Errorf("element %d = %d, want 0", i, v.Get(i))
			}
		}
	})

	t.Run("WithSizeZero", func(t *testing.T) {
		v := WithSize[int](0)
		if v.Size() != 0 || v.Capacity() != 0 || v.items.Held() {
			t.Error("WithSize(0) allocated storage")
		}
	})

	t.Run("Filled", func(t *testing.T) {
		v := Filled(3, "x")
		if v.Size() != 3 || v.Capacity() != 3 {
			t.Errorf("size/capacity = %d/%d, want 3/3", v.Size(), v.Capacity())
		}
		for i := 0; i < v.Size(); i++ {
			if v.Get(i) != "x" {
				t.Errorf("element %d = %q, want %q", i, v.Get(i), "x")
			}
		}
	})

	t.Run("Of", func(t *testing.T) {
		v := Of(1, 2, 3)
		if v.Size() != 3 || v.Capacity() != 3 {
			t.Errorf("size/capacity = %d/%d, want 3/3", v.Size(), v.Capacity())
		}
		for i, want := range []int{1, 2, 3} {
			if v.Get(i) != want {
				t.Errorf("element %d = %d, want %d", i, v.Get(i), want)
			}
		}
	})
}

func TestClone(t *testing.T) {
	a := WithCapacity[int](10)
	a.PushBack(1)
	a.PushBack(2)

	b := a.Clone()
	if !Equal(a, b) {
		t.Errorf("clone differs: %v vs %v", a.Slice(), b.Slice())
	}
	if b.Capacity() != a.Capacity() {
		t.Errorf("clone capacity = %d, want %d", b.Capacity(), a.Capacity())
	}

	// Deep copy: mutating the source must not touch the clone.
	a.Set(0, 99)
	a.PushBack(3)
	if !Equal(b, Of(1, 2)) {
		t.Errorf("clone changed by source mutation: %v", b.Slice())
	}
}

func TestCloneEmpty(t *testing.T) {
	b := New[int]().Clone()
	if b.Size() != 0 || b.Capacity() != 0 || b.items.Held() {
		t.Error("clone of empty vector allocated storage")
	}
}

func TestAssign(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(9)

	b.Assign(a)
	if !Equal(a, b) {
		t.Errorf("after assign: %v vs %v", a.Slice(), b.Slice())
	}

	// No shared storage.
	a.Set(0, 42)
	if Equal(a, b) {
		t.Error("assign aliased the source's storage")
	}
}

func TestAssignSelf(t *testing.T) {
	a := Of(1, 2, 3)
	a.Assign(a)
	if !Equal(a, Of(1, 2, 3)) {
		t.Errorf("self-assign corrupted vector: %v", a.Slice())
	}
}

func TestAssignEmptySource(t *testing.T) {
	a := Of(1, 2, 3)
	capacity := a.Capacity()

	a.Assign(New[int]())
	if a.Size() != 0 {
		t.Errorf("size after assigning empty = %d, want 0", a.Size())
	}
	// The fast path degenerates to Clear: capacity stays for reuse.
	if a.Capacity() != capacity {
		t.Errorf("capacity after assigning empty = %d, want %d", a.Capacity(), capacity)
	}
}

func TestMoveFrom(t *testing.T) {
	src := Of(1, 2, 3)
	srcCapacity := src.Capacity()
	raw := src.items.Raw()

	dst := Of(9, 9)
	dst.MoveFrom(src)

	if !Equal(dst, Of(1, 2, 3)) {
		t.Errorf("moved contents = %v, want [1 2 3]", dst.Slice())
	}
	if dst.Capacity() != srcCapacity {
		t.Errorf("moved capacity = %d, want %d", dst.Capacity(), srcCapacity)
	}
	if dst.items.Raw() != raw {
		t.Error("move reallocated instead of stealing the buffer")
	}
	if src.Size() != 0 || src.Capacity() != 0 || src.items.Held() {
		t.Errorf("source not emptied: size=%d capacity=%d", src.Size(), src.Capacity())
	}
}

func TestMoveFromSelf(t *testing.T) {
	a := Of(1, 2, 3)
	a.MoveFrom(a)
	if !Equal(a, Of(1, 2, 3)) {
		t.Errorf("self-move corrupted vector: %v", a.Slice())
	}
	if a.Size() != 3 || !a.items.Held() {
		t.Error("self-move emptied the vector")
	}
}

func TestTake(t *testing.T) {
	src := Of(1, 2, 3)
	raw := src.items.Raw()

	v := Take(src)
	if !Equal(v, Of(1, 2, 3)) {
		t.Errorf("taken contents = %v, want [1 2 3]", v.Slice())
	}
	if v.items.Raw() != raw {
		t.Error("Take reallocated instead of stealing the buffer")
	}
	if src.Size() != 0 || src.Capacity() != 0 {
		t.Error("source not emptied by Take")
	}
}
