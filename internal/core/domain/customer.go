package domain

type Customer struct {
	ID       uint64
	Name     string
	Age      int
	Phone    string
	Gender   string
	Password string
}
