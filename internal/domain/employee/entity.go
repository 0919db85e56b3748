package employee

type Employee struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
