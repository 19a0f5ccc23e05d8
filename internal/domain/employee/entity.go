package employee

type Employee struct {
	ID    int64
	Name  string
	Email string
	Dept  string
}
