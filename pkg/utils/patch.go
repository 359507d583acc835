package utils

// Cambio es un valor editado que difiere del valor maestro.
type Cambio[K comparable, V comparable] struct {
	ID    K
	Valor V
}

// DiffCambios compara la lista maestra contra el mapa de valores editados y
// devuelve solo las entradas que realmente cambiaron. Las claves editadas que
// no existen en la lista maestra se ignoran.
func DiffCambios[K comparable, V comparable](master map[K]V, editados map[K]V) []Cambio[K, V] {
	var cambios []Cambio[K, V]
	for id, original := range master {
		editado, ok := editados[id]
		if !ok {
			continue
		}
		if editado != original {
			cambios = append(cambios, Cambio[K, V]{ID: id, Valor: editado})
		}
	}
	return cambios
}
