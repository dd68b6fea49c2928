package domain

// Amenity is a feature a place can offer (Wi-Fi, pool, ...).
type Amenity struct {
	base
	name string
}

type AmenityInput struct {
	Name string
}

type AmenityPatch struct {
	Name *string
}

type AmenityView struct {
	Meta
	Name string `json:"name"`
}

func NewAmenity(in AmenityInput) (*Amenity, error) {
	if err := ValidateAmenityName(in.Name); err != nil {
		return nil, err
	}
	return &Amenity{base: newBase(), name: in.Name}, nil
}

func (a *Amenity) Name() string { return a.name }

func (a *Amenity) Apply(p AmenityPatch) error {
	if p.Name == nil {
		return nil
	}
	if err := ValidateAmenityName(*p.Name); err != nil {
		return err
	}
	a.name = *p.Name
	a.touch()
	return nil
}

func (a *Amenity) Attribute(name string) (any, bool) {
	if name == "name" {
		return a.name, true
	}
	return a.attribute(name)
}

func (a *Amenity) Clone() *Amenity {
	c := *a
	return &c
}

func (a *Amenity) View() AmenityView {
	return AmenityView{Meta: a.meta(), Name: a.name}
}
