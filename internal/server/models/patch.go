package models

// UserPatch is a partial update of a User. Nil fields are left untouched;
// nested patches follow the same rule so a caller can change a single
// coordinate without resending the whole address.
type UserPatch struct {
	Name     *string
	Username *string
	Email    *string
	Phone    *string
	Website  *string
	Address  *AddressPatch
	Company  *CompanyPatch
}

type AddressPatch struct {
	Street  *string
	Suite   *string
	City    *string
	Zipcode *string
	Geo     *GeoPatch
}

type GeoPatch struct {
	Lat *string
	Lng *string
}

type CompanyPatch struct {
	Name        *string
	CatchPhrase *string
	BS          *string
}

// Apply merges the patch into u, overwriting only the fields that are set.
func (p *UserPatch) Apply(u *User) {
	if p == nil {
		return
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Website != nil {
		u.Website = *p.Website
	}
	if p.Address != nil {
		p.Address.apply(&u.Address)
	}
	if p.Company != nil {
		p.Company.apply(&u.Company)
	}
}

func (p *AddressPatch) apply(a *Address) {
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.Suite != nil {
		a.Suite = *p.Suite
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.Zipcode != nil {
		a.Zipcode = *p.Zipcode
	}
	if p.Geo != nil {
		if p.Geo.Lat != nil {
			a.Geo.Lat = *p.Geo.Lat
		}
		if p.Geo.Lng != nil {
			a.Geo.Lng = *p.Geo.Lng
		}
	}
}

func (p *CompanyPatch) apply(c *Company) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.CatchPhrase != nil {
		c.CatchPhrase = *p.CatchPhrase
	}
	if p.BS != nil {
		c.BS = *p.BS
	}
}
