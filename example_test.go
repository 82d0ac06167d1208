package minipeg_test

import (
	"fmt"

	"github.com/ava12/minipeg/sql"
)

func Example() {
	stmt, e := sql.Parse(`
CREATE TABLE Person(
	PersonID int,
	LastName varchar
)`)
	if e != nil {
		fmt.Println(e)
		return
	}

	fmt.Println(stmt.Name)
	for _, c := range stmt.Columns {
		fmt.Println(c.Name, c.DataType)
	}

	_, e = sql.Parse("CREATE TABLE Person(PersonID int")
	fmt.Println(e)

	// Output:
	// Person
	// PersonID int
	// LastName varchar
	// missing 'RIGHT PAREN' at 1, 33
}
