package identity

// Directory maps an authenticated username to the employee it may see.
// Backed by configuration today; the interface leaves room for a database or
// directory service later.
type Directory interface {
	EmployeeIDFor(username string) (int64, bool)
}

// StaticDirectory is a fixed username -> employee id table.
type StaticDirectory map[string]int64

func (d StaticDirectory) EmployeeIDFor(username string) (int64, bool) {
	id, ok := d[username]
	return id, ok
}
