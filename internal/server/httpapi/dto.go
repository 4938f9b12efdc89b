package httpapi

import "github.com/peopled/peopled/internal/server/models"

// Request payloads. Binding tags carry the declarative validation: the
// services behind these handlers assume required fields are present and the
// password is at least 8 characters.

type geoPayload struct {
	Lat string `json:"lat" binding:"required"`
	Lng string `json:"lng" binding:"required"`
}

type addressPayload struct {
	Street  string     `json:"street" binding:"required"`
	Suite   string     `json:"suite" binding:"required"`
	City    string     `json:"city" binding:"required"`
	Zipcode string     `json:"zipcode" binding:"required"`
	Geo     geoPayload `json:"geo" binding:"required"`
}

type companyPayload struct {
	Name        string `json:"name" binding:"required"`
	CatchPhrase string `json:"catchPhrase" binding:"required"`
	BS          string `json:"bs" binding:"required"`
}

type userPayload struct {
	Name     string         `json:"name" binding:"required"`
	Username string         `json:"username" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Address  addressPayload `json:"address" binding:"required"`
	Phone    string         `json:"phone" binding:"required"`
	Website  string         `json:"website" binding:"required"`
	Company  companyPayload `json:"company" binding:"required"`
}

type registerPayload struct {
	userPayload
	Password string `json:"password" binding:"required,min=8"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (p *userPayload) toModel() *models.User {
	return &models.User{
		Name:     p.Name,
		Username: p.Username,
		Email:    p.Email,
		Address: models.Address{
			Street:  p.Address.Street,
			Suite:   p.Address.Suite,
			City:    p.Address.City,
			Zipcode: p.Address.Zipcode,
			Geo:     models.Geo{Lat: p.Address.Geo.Lat, Lng: p.Address.Geo.Lng},
		},
		Phone:   p.Phone,
		Website: p.Website,
		Company: models.Company{
			Name:        p.Company.Name,
			CatchPhrase: p.Company.CatchPhrase,
			BS:          p.Company.BS,
		},
	}
}

// userPatchPayload is the partial-update body. Absent keys stay nil and leave
// the stored values untouched.

type geoPatchPayload struct {
	Lat *string `json:"lat"`
	Lng *string `json:"lng"`
}

type addressPatchPayload struct {
	Street  *string          `json:"street"`
	Suite   *string          `json:"suite"`
	City    *string          `json:"city"`
	Zipcode *string          `json:"zipcode"`
	Geo     *geoPatchPayload `json:"geo"`
}

type companyPatchPayload struct {
	Name        *string `json:"name"`
	CatchPhrase *string `json:"catchPhrase"`
	BS          *string `json:"bs"`
}

type userPatchPayload struct {
	Name     *string              `json:"name"`
	Username *string              `json:"username"`
	Email    *string              `json:"email" binding:"omitempty,email"`
	Address  *addressPatchPayload `json:"address"`
	Phone    *string              `json:"phone"`
	Website  *string              `json:"website"`
	Company  *companyPatchPayload `json:"company"`
}

func (p *userPatchPayload) toPatch() *models.UserPatch {
	patch := &models.UserPatch{
		Name:     p.Name,
		Username: p.Username,
		Email:    p.Email,
		Phone:    p.Phone,
		Website:  p.Website,
	}
	if p.Address != nil {
		patch.Address = &models.AddressPatch{
			Street:  p.Address.Street,
			Suite:   p.Address.Suite,
			City:    p.Address.City,
			Zipcode: p.Address.Zipcode,
		}
		if p.Address.Geo != nil {
			patch.Address.Geo = &models.GeoPatch{Lat: p.Address.Geo.Lat, Lng: p.Address.Geo.Lng}
		}
	}
	if p.Company != nil {
		patch.Company = &models.CompanyPatch{
			Name:        p.Company.Name,
			CatchPhrase: p.Company.CatchPhrase,
			BS:          p.Company.BS,
		}
	}
	return patch
}

// Response shapes. The password hash has no field here on purpose.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type geoResponse struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type addressResponse struct {
	Street  string      `json:"street"`
	Suite   string      `json:"suite"`
	City    string      `json:"city"`
	Zipcode string      `json:"zipcode"`
	Geo     geoResponse `json:"geo"`
}

type companyResponse struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

type userResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Address  addressResponse `json:"address"`
	Phone    string          `json:"phone"`
	Website  string          `json:"website"`
	Company  companyResponse `json:"company"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Address: addressResponse{
			Street:  u.Address.Street,
			Suite:   u.Address.Suite,
			City:    u.Address.City,
			Zipcode: u.Address.Zipcode,
			Geo:     geoResponse{Lat: u.Address.Geo.Lat, Lng: u.Address.Geo.Lng},
		},
		Phone:   u.Phone,
		Website: u.Website,
		Company: companyResponse{
			Name:        u.Company.Name,
			CatchPhrase: u.Company.CatchPhrase,
			BS:          u.Company.BS,
		},
	}
}
