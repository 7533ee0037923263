package ports

// DictionaryAdapter exposes the properties of an arbitrary value as a map.
type DictionaryAdapter interface {
	ToMap(value interface{}) (map[string]interface{}, error)
}
