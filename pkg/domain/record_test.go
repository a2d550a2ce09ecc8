package domain

import "testing"

type fakeRecord struct{ id int }

func (f fakeRecord) GetID() int { return f.id }

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		items []fakeRecord
		want  int
	}{
		{"vazia", nil, 1},
		{"sequencial", []fakeRecord{{1}, {2}}, 3},
		{"com buracos", []fakeRecord{{7}, {3}}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(tt.items); got != tt.want {
				t.Errorf("NextID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRemoveAndFind(t *testing.T) {
	items := []fakeRecord{{1}, {2}, {3}}

	out := Remove(items, 2)
	if len(out) != 2 || out[0].id != 1 || out[1].id != 3 {
		t.Fatalf("Remove() = %v", out)
	}
	if len(items) != 3 {
		t.Fatalf("Remove alterou a lista original")
	}
	if _, ok := Find(out, 2); ok {
		t.Errorf("Find encontrou registro removido")
	}
	if got, ok := Find(items, 3); !ok || got.id != 3 {
		t.Errorf("Find(3) = %v, %v", got, ok)
	}
	if IndexOf(items, 9) != -1 {
		t.Errorf("IndexOf de id inexistente deveria ser -1")
	}
}
