package entity

type Crew struct {
	Base
	FirstName string  `db:"first_name"`
	LastName  *string `db:"last_name"`
}

func (c *Crew) FullName() string {
	if c.LastName == nil || *c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + *c.LastName
}
