package domain

// Role is the backend's user role name.
type Role string

const (
	RolePerson        Role = "Person"
	RolePoliceOfficer Role = "PoliceOfficer"
	RoleFirm          Role = "Firm"
	RoleAdmin         Role = "Admin"
	RoleSuperadmin    Role = "Superadmin"
)

// User is the denormalized profile record the backend returns from
// /user/my-data. A partial variant of the SAME shape is recovered from token
// claims when the profile endpoint is unreachable: in that case only UUID,
// Email and Role are populated and every other field is an empty string,
// never a pointer. Callers must tolerate empty fields.
type User struct {
	UUID             string  `json:"uuid"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	OIB              string  `json:"oib"` // national ID
	Residence        string  `json:"residence"`
	BirthDate        string  `json:"birthDate"`
	Email            string  `json:"email"`
	Role             Role    `json:"role"`
	RegisteredDevice *Mobile `json:"registeredDevice,omitempty"`
}

// DisplayName returns "First Last" or the email when the profile is a
// token-decoded partial record.
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.FirstName == "" || u.LastName == "" {
		return u.FirstName + u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// Mobile is the backend's record of an enrolled device.
type Mobile struct {
	UUID             string `json:"uuid"`
	UserID           int64  `json:"userId,omitempty"`
	CreatorID        int64  `json:"creatorId"`
	RegisteredDevice string `json:"registeredDevice"`
	ActivationToken  string `json:"activationToken"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}
