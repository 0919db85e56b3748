package project

type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
