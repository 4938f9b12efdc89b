package models

import "time"

// Geo is the coordinate pair embedded in an Address. Coordinates are kept as
// strings exactly as submitted; the service never interprets them.
type Geo struct {
	Lat string
	Lng string
}

// Address is a value object owned by a User. It has no id and no lifecycle of
// its own: it is created, updated and deleted together with its user row.
type Address struct {
	Street  string
	Suite   string
	City    string
	Zipcode string
	Geo     Geo
}

// Company is a value object owned by a User.
type Company struct {
	Name        string
	CatchPhrase string
	BS          string
}

// User is an identity record in the directory. ID is assigned by the store at
// creation and never changes.
type User struct {
	ID        int64
	Name      string
	Username  string
	Email     string
	Address   Address
	Phone     string
	Website   string
	Company   Company
	CreatedAt time.Time
}
