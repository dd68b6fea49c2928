package domain

// User is a registered person; owners and reviewers are both users.
type User struct {
	base
	firstName string
	lastName  string
	email     string
	isAdmin   bool
}

// UserInput carries the fields accepted at construction.
type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// UserPatch lists the mutable user fields; nil means "leave unchanged".
// IsAdmin is deliberately absent: it is fixed at construction.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// UserView is the plain wire representation of a User.
type UserView struct {
	Meta
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

func NewUser(in UserInput) (*User, error) {
	if err := firstError(
		ValidateFirstName(in.FirstName),
		ValidateLastName(in.LastName),
		ValidateEmail(in.Email),
	); err != nil {
		return nil, err
	}
	return &User{
		base:      newBase(),
		firstName: in.FirstName,
		lastName:  in.LastName,
		email:     in.Email,
		isAdmin:   in.IsAdmin,
	}, nil
}

func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string { return u.lastName }
func (u *User) Email() string { return u.email }
func (u *User) IsAdmin() bool { return u.isAdmin }

// Apply validates every field present in p and assigns them only if all pass.
func (u *User) Apply(p UserPatch) error {
	var checks []error
	if p.FirstName != nil {
		checks = append(checks, ValidateFirstName(*p.FirstName))
	}
	if p.LastName != nil {
		checks = append(checks, ValidateLastName(*p.LastName))
	}
	if p.Email != nil {
		checks = append(checks, ValidateEmail(*p.Email))
	}
	if err := firstError(checks...); err != nil {
		return err
	}
	if len(checks) == 0 {
		return nil
	}

	if p.FirstName != nil {
		u.firstName = *p.FirstName
	}
	if p.LastName != nil {
		u.lastName = *p.LastName
	}
	if p.Email != nil {
		u.email = *p.Email
	}
	u.touch()
	return nil
}

func (u *User) Attribute(name string) (any, bool) {
	switch name {
	case "first_name":
		return u.firstName, true
	case "last_name":
		return u.lastName, true
	case "email":
		return u.email, true
	case "is_admin":
		return u.isAdmin, true
	}
	return u.attribute(name)
}

func (u *User) Clone() *User {
	c := *u
	return &c
}

func (u *User) View() UserView {
	return UserView{
		Meta:      u.meta(),
		FirstName: u.firstName,
		LastName:  u.lastName,
		Email:     u.email,
		IsAdmin:   u.isAdmin,
	}
}
