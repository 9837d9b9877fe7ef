package entities

// Carrier справочник перевозчиков, заполняется миграцией.
type Carrier struct {
	ID   int64
	Code string
	Name string
}
