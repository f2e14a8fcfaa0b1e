package entity

type AirplaneType struct {
	Base
	Name string `db:"name"`
}
