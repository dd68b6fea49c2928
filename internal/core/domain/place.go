package domain

// Place is a listing owned by a user. Owner and amenity ids are checked for
// existence by the facade; the place itself only checks they are present.
type Place struct {
	base
	title       string
	description string
	price       float64
	latitude    float64
	longitude   float64
	ownerID     string
	amenityIDs  []string
	reviewIDs   []string
}

type PlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// PlacePatch lists the client-mutable place fields. Reviews are not here:
// they are maintained by the facade through AddReview / RemoveReview.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	OwnerID     *string
	AmenityIDs  *[]string
}

// TouchesReferences reports whether applying p would change a foreign key.
func (p PlacePatch) TouchesReferences() bool {
	return p.OwnerID != nil || p.AmenityIDs != nil
}

// PlaceView is the flat wire representation used in listings.
type PlaceView struct {
	Meta
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"`
	Reviews     []string `json:"reviews"`
}

// PlaceDetail is the expanded representation: references are replaced by
// the full views of the entities they point to. Owner is nil when the owner
// has since been removed.
type PlaceDetail struct {
	Meta
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	OwnerID     string        `json:"owner_id"`
	Owner       *UserView     `json:"owner"`
	Amenities   []AmenityView `json:"amenities"`
	Reviews     []ReviewView  `json:"reviews"`
}

func NewPlace(in PlaceInput) (*Place, error) {
	if err := firstError(
		ValidateTitle(in.Title),
		ValidatePrice(in.Price),
		ValidateLatitude(in.Latitude),
		ValidateLongitude(in.Longitude),
		ValidateReference("owner_id", in.OwnerID),
		validateAmenityIDs(in.AmenityIDs),
	); err != nil {
		return nil, err
	}
	return &Place{
		base:        newBase(),
		title:       in.Title,
		description: in.Description,
		price:       in.Price,
		latitude:    in.Latitude,
		longitude:   in.Longitude,
		ownerID:     in.OwnerID,
		amenityIDs:  dedupe(in.AmenityIDs),
		reviewIDs:   []string{},
	}, nil
}

func validateAmenityIDs(ids []string) error {
	for _, id := range ids {
		if err := ValidateReference("amenities", id); err != nil {
			return err
		}
	}
	return nil
}

// dedupe keeps the first occurrence of each id, preserving order.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (p *Place) Title() string { return p.title }
func (p *Place) Description() string { return p.description }
func (p *Place) Price() float64 { return p.price }
func (p *Place) Latitude() float64 { return p.latitude }
func (p *Place) Longitude() float64 { return p.longitude }
func (p *Place) OwnerID() string { return p.ownerID }

func (p *Place) AmenityIDs() []string {
	return append([]string(nil), p.amenityIDs...)
}

func (p *Place) ReviewIDs() []string {
	return append([]string(nil), p.reviewIDs...)
}

func (p *Place) Apply(patch PlacePatch) error {
	var checks []error
	if patch.Title != nil {
		checks = append(checks, ValidateTitle(*patch.Title))
	}
	if patch.Price != nil {
		checks = append(checks, ValidatePrice(*patch.Price))
	}
	if patch.Latitude != nil {
		checks = append(checks, ValidateLatitude(*patch.Latitude))
	}
	if patch.Longitude != nil {
		checks = append(checks, ValidateLongitude(*patch.Longitude))
	}
	if patch.OwnerID != nil {
		checks = append(checks, ValidateReference("owner_id", *patch.OwnerID))
	}
	if patch.AmenityIDs != nil {
		checks = append(checks, validateAmenityIDs(*patch.AmenityIDs))
	}
	if err := firstError(checks...); err != nil {
		return err
	}
	if len(checks) == 0 && patch.Description == nil {
		return nil
	}

	if patch.Title != nil {
		p.title = *patch.Title
	}
	if patch.Description != nil {
		p.description = *patch.Description
	}
	if patch.Price != nil {
		p.price = *patch.Price
	}
	if patch.Latitude != nil {
		p.latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		p.longitude = *patch.Longitude
	}
	if patch.OwnerID != nil {
		p.ownerID = *patch.OwnerID
	}
	if patch.AmenityIDs != nil {
		p.amenityIDs = dedupe(*patch.AmenityIDs)
	}
	p.touch()
	return nil
}

// AddReview appends a review back-reference; adding the same id twice is a no-op.
func (p *Place) AddReview(reviewID string) {
	for _, id := range p.reviewIDs {
		if id == reviewID {
			return
		}
	}
	p.reviewIDs = append(p.reviewIDs, reviewID)
	p.touch()
}

// RemoveReview drops a review back-reference and reports whether it was present.
func (p *Place) RemoveReview(reviewID string) bool {
	for i, id := range p.reviewIDs {
		if id == reviewID {
			p.reviewIDs = append(p.reviewIDs[:i:i], p.reviewIDs[i+1:]...)
			p.touch()
			return true
		}
	}
	return false
}

func (p *Place) Attribute(name string) (any, bool) {
	switch name {
	case "title":
		return p.title, true
	case "description":
		return p.description, true
	case "price":
		return p.price, true
	case "latitude":
		return p.latitude, true
	case "longitude":
		return p.longitude, true
	case "owner_id":
		return p.ownerID, true
	}
	return p.attribute(name)
}

func (p *Place) Clone() *Place {
	c := *p
	c.amenityIDs = append([]string(nil), p.amenityIDs...)
	c.reviewIDs = append([]string(nil), p.reviewIDs...)
	return &c
}

func (p *Place) View() PlaceView {
	return PlaceView{
		Meta:        p.meta(),
		Title:       p.title,
		Description: p.description,
		Price:       p.price,
		Latitude:    p.latitude,
		Longitude:   p.longitude,
		OwnerID:     p.ownerID,
		Amenities:   nonNil(p.amenityIDs),
		Reviews:     nonNil(p.reviewIDs),
	}
}

// Expand builds the nested detail view from already-resolved references.
func (p *Place) Expand(owner *User, amenities []*Amenity, reviews []*Review) PlaceDetail {
	d := PlaceDetail{
		Meta:        p.meta(),
		Title:       p.title,
		Description: p.description,
		Price:       p.price,
		Latitude:    p.latitude,
		Longitude:   p.longitude,
		OwnerID:     p.ownerID,
		Amenities:   make([]AmenityView, 0, len(amenities)),
		Reviews:     make([]ReviewView, 0, len(reviews)),
	}
	if owner != nil {
		v := owner.View()
		d.Owner = &v
	}
	for _, a := range amenities {
		d.Amenities = append(d.Amenities, a.View())
	}
	for _, r := range reviews {
		d.Reviews = append(d.Reviews, r.View())
	}
	return d
}

func nonNil(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
