package domain

// Record é qualquer registro identificado por um inteiro positivo
// dentro da sua coleção.
type Record interface {
	GetID() int
}

// NextID retorna o maior id existente mais um, ou 1 para coleções vazias
func NextID[T Record](items []T) int {
	highest := 0
	for _, item := range items {
		if id := item.GetID(); id > highest {
			highest = id
		}
	}
	return highest + 1
}

// IndexOf retorna a posição do registro com o id informado, ou -1
func IndexOf[T Record](items []T, id int) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// Find retorna o registro com o id informado
func Find[T Record](items []T, id int) (T, bool) {
	if i := IndexOf(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// Remove devolve uma nova lista sem o registro do id informado
func Remove[T Record](items []T, id int) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetID() != id {
			out = append(out, item)
		}
	}
	return out
}
